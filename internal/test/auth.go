package test

import (
	"context"
	"errors"
	"strings"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
// Without overrides a token is "sid|uid|role".
type StrategyStub struct {
	IssueFn func(pkgAuth.TokenClaims) (string, error)
	ParseFn func(string) (pkgAuth.TokenClaims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(claims pkgAuth.TokenClaims) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(claims)
	}
	return claims.SessionID + "|" + claims.UserID + "|" + string(claims.Role), nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.TokenClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.SplitN(token, "|", 3)
	if len(parts) != 3 {
		return pkgAuth.TokenClaims{}, pkgAuth.ErrInvalidToken
	}
	return pkgAuth.TokenClaims{SessionID: parts[0], UserID: parts[1], Role: model.Role(parts[2])}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub resolves tokens for middleware tests.
type AuthenticatorStub struct {
	Identity       *model.Identity
	Err            error
	AuthenticateFn func(context.Context, string) (*model.Identity, error)
}

// Authenticate either delegates to override or returns predefined result.
func (s AuthenticatorStub) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Identity == nil {
		return nil, pkgAuth.ErrInvalidToken
	}
	identity := *s.Identity
	return &identity, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
