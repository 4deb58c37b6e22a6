package pricing

import (
	"context"

	domain "beardball/internal/domain/pricing"
)

// Store persists Package state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Package, error)
	Save(ctx context.Context, value domain.Package) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Package, error)
	Count(ctx context.Context) (int, error)
}
