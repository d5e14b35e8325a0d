package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

const (
	// IdentityContextKey is a gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	// TokenContextKey is a gin context key for the raw session token.
	TokenContextKey = "token"
	authCookieName  = "vegdelivery_token"
)

// Authenticator resolves a session token into an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
}

// AuthRequired ensures the request carries a live session before accessing handler.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if isAuthError(err) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and never aborts.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := ExtractToken(c); token != "" {
			if identity, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(IdentityContextKey, identity)
				c.Set(TokenContextKey, token)
			}
		}
		c.Next()
	}
}

// Identity returns the identity attached by AuthRequired or OptionalAuth.
func Identity(c *gin.Context) (*model.Identity, bool) {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return nil, false
	}
	identity, ok := val.(*model.Identity)
	return identity, ok && identity != nil
}

// ExtractToken reads the session token from the Authorization header or cookie.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}

func isAuthError(err error) bool {
	return errors.Is(err, pkgAuth.ErrInvalidToken) || errors.Is(err, domainErrors.ErrSessionNotFound)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized", Redirect: string(access.RouteLogin)})
}
