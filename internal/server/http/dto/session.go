package dto

import (
	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse describes the signed-in staff member.
type IdentityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NavItemResponse is one menu entry.
type NavItemResponse struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	Token        string            `json:"token,omitempty"`
	User         IdentityResponse  `json:"user"`
	DefaultRoute string            `json:"defaultRoute"`
	Navigation   []NavItemResponse `json:"navigation"`
}

// NavigateResponse is the outcome of a route check.
type NavigateResponse struct {
	Path     string            `json:"path"`
	Route    string            `json:"route,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
	Allowed  bool              `json:"allowed"`
	NotFound bool              `json:"notFound,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// NewSessionResponse builds the session payload for identity.
func NewSessionResponse(identity model.Identity, token string) SessionResponse {
	items := access.Navigation(identity.Role)
	nav := make([]NavItemResponse, 0, len(items))
	for _, item := range items {
		nav = append(nav, NavItemResponse{Label: item.Label, Route: string(item.Route)})
	}
	return SessionResponse{
		Token: token,
		User: IdentityResponse{
			ID:    identity.UserID,
			Name:  identity.Name,
			Email: identity.Email,
			Role:  string(identity.Role),
		},
		DefaultRoute: string(access.DefaultRoute(identity.Role)),
		Navigation:   nav,
	}
}

// NewNavigateResponse converts a guard decision.
func NewNavigateResponse(path string, d access.Decision) NavigateResponse {
	return NavigateResponse{
		Path:     path,
		Route:    string(d.Route),
		Params:   d.Params,
		Allowed:  d.Allowed,
		NotFound: d.NotFound,
		Redirect: string(d.Redirect),
	}
}
