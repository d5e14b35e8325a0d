package repository

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// VegetableMutation edits a vegetable in place. Returning an error discards the edit.
type VegetableMutation func(veg *model.Vegetable) error

// VegetableRepository describes operations with the vegetable catalogue.
type VegetableRepository interface {
	List(ctx context.Context) ([]model.Vegetable, error)
	GetByID(ctx context.Context, id string) (*model.Vegetable, error)
	Update(ctx context.Context, id string, mutate VegetableMutation) (*model.Vegetable, error)
}

// PriceDraftRepository stores per-manager staged price band edits.
type PriceDraftRepository interface {
	Stage(ctx context.Context, managerID string, draft model.PriceBandDraft) (model.PriceBandDraft, error)
	Get(ctx context.Context, managerID, vegetableID string) (*model.PriceBandDraft, error)
	List(ctx context.Context, managerID string) ([]model.PriceBandDraft, error)
	Discard(ctx context.Context, managerID, vegetableID string) error
}
