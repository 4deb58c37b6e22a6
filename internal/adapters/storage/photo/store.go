package photo

import (
	"context"

	domain "beardball/internal/domain/photo"
)

// ListFilter narrows photo listings.
type ListFilter struct {
	Category string // empty matches all
}

// Store persists Photo state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Photo, error)
	Save(ctx context.Context, value domain.Photo) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Photo, error)
}
