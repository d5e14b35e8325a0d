package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
	"github.com/polkiloo/vegdelivery/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	identity, ok := middleware.Identity(c)
	if !ok {
		return model.Identity{}
	}
	return *identity
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request"})
}

// respondError maps domain errors to statuses. back is the list view offered
// when the requested order does not exist.
func respondError(c *gin.Context, err error, back access.Route) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Back: string(back)})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, pkgAuth.ErrInvalidToken), errors.Is(err, domainErrors.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized", Redirect: string(access.RouteLogin)})
	case errors.Is(err, domainErrors.ErrInvalidTransition), errors.Is(err, domainErrors.ErrRoleChangeForbidden):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidInput), errors.Is(err, domainErrors.ErrInvalidRole), errors.Is(err, domainErrors.ErrInvalidAssignee):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
