package booking

import (
	"context"

	domain "beardball/internal/domain/booking"
)

// ListFilter narrows booking listings.
type ListFilter struct {
	Status string // empty matches all
}

// Store persists booking requests.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Request, error)
	Save(ctx context.Context, value domain.Request) error
	List(ctx context.Context, filter ListFilter) ([]domain.Request, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
