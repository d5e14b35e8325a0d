package repository

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// CredentialRepository resolves static login records.
type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Credential, error)
}
