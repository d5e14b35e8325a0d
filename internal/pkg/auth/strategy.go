package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenClaims is the session reference carried by a token.
type TokenClaims struct {
	SessionID string
	UserID    string
	Role      model.Role
}

type Strategy interface {
	IssueToken(claims TokenClaims) (string, error)
	ParseToken(token string) (TokenClaims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
