package repository

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// SessionRepository keeps active login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}
