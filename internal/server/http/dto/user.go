package dto

import (
	"time"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// UserResponse describes a user record.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoleRequest describes role change payload.
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AdminDashboardResponse holds admin counters.
type AdminDashboardResponse struct {
	PlacedOrders int `json:"placedOrders"`
	TotalOrders  int `json:"totalOrders"`
	TotalUsers   int `json:"totalUsers"`
}

// NewUserResponse converts model.User.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

// NewUserList converts a slice of users. Empty input yields an empty list.
func NewUserList(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
