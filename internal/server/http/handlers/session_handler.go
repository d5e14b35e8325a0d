package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
	"github.com/polkiloo/vegdelivery/internal/server/http/middleware"
)

// SessionHandler processes login, logout and session lookup.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "")
		return
	}

	middleware.SetAuthCookie(c, res.Token)
	c.JSON(http.StatusOK, dto.NewSessionResponse(res.Identity, res.Token))
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context(), middleware.ExtractToken(c)); err != nil {
		respondError(c, err, "")
		return
	}
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"redirect": string(access.RouteLogin)})
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSessionResponse(CurrentIdentity(c), ""))
}

// Navigate handles GET /api/navigate?path=.
func (h *SessionHandler) Navigate(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	identity, _ := middleware.Identity(c)
	decision := access.Check(identity, path)
	c.JSON(http.StatusOK, dto.NewNavigateResponse(path, decision))
}
