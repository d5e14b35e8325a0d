package repository

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// UserMutation edits a user in place. Returning an error discards the edit.
type UserMutation func(user *model.User) error

// UserRepository describes access to known users.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id string, mutate UserMutation) (*model.User, error)
}
