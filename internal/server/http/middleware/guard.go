package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

// RequireView lets the request through only when the current identity may open route.
func RequireView(route access.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := Identity(c)
		decision := access.CheckRoute(identity, route, nil)
		switch {
		case decision.Allowed:
			c.Next()
		case decision.Redirect == access.RouteLogin:
			abortUnauthorized(c)
		case decision.NotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden", Redirect: string(decision.Redirect)})
		}
	}
}
