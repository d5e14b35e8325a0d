package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

const defaultTokenTTL = 24 * time.Hour

// JWTStrategy issues HS256 signed session tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken signs claims into a compact JWT.
func (s *JWTStrategy) IssueToken(claims TokenClaims) (string, error) {
	if claims.SessionID == "" || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	issued := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.SessionID,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns carried claims.
func (s *JWTStrategy) ParseToken(token string) (TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return TokenClaims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.ID == "" || claims.Subject == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	return TokenClaims{SessionID: claims.ID, UserID: claims.Subject, Role: claims.Role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
