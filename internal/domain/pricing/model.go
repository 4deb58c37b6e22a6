package pricing

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("package name cannot be empty")
	ErrInvalidPrice   = errors.New("package price must be greater than zero")
	ErrInvalidAnchor  = errors.New("original price must be at least the current price when set")
	ErrEmptyFeatures  = errors.New("package must list at least one feature")
	ErrEmptyDuration  = errors.New("package duration cannot be empty")
)

// Package is a bookable training package shown on the booking page.
// OriginalPrice is an optional anchor price; when set above Price the
// package renders as discounted.
type Package struct {
	ID            string
	Name          string
	Duration      string // e.g. "1.5 Hours"
	Price         int    // dollars per session
	OriginalPrice int    // 0 when no discount applies
	Description   string
	Features      []string
	Popular       bool
	SortOrder     int
}

// Validate checks the package's invariants.
// PRE: Package struct is populated
// POST: Returns nil if valid, error describing the first violation otherwise
func (p *Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Duration) == "" {
		return ErrEmptyDuration
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
		return ErrInvalidAnchor
	}
	if len(p.Features) == 0 {
		return ErrEmptyFeatures
	}
	return nil
}

// Discounted reports whether the package has a live discount.
// INVARIANT: p is not mutated
func (p Package) Discounted() bool {
	return p.OriginalPrice > p.Price
}
