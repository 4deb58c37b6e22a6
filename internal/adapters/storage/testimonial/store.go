package testimonial

import (
	"context"

	domain "beardball/internal/domain/testimonial"
)

// Store persists Testimonial state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Testimonial, error)
	Save(ctx context.Context, value domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Testimonial, error)
	Count(ctx context.Context) (int, error)
}
