package drill

import (
	"context"

	domain "beardball/internal/domain/drill"
)

// ListFilter narrows drill listings.
type ListFilter struct {
	Category string // empty matches all
}

// Store persists Drill state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Drill, error)
	Save(ctx context.Context, value domain.Drill) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Drill, error)
	Count(ctx context.Context) (int, error)
}
