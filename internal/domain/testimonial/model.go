package testimonial

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("testimonial name cannot be empty")
	ErrEmptyQuote    = errors.New("testimonial quote cannot be empty")
	ErrInvalidRating = errors.New("testimonial rating must be between 1 and 5")
)

// Testimonial is a player quote shown on the home page carousel.
type Testimonial struct {
	ID       string
	Name     string
	Role     string // e.g. "High School Player", "College Recruit"
	Quote    string
	Rating   int // 1-5 stars
	ImageURL string
}

// Validate checks required fields and the rating range.
// PRE: Testimonial struct is populated
// POST: Returns nil if valid, error describing the first violation otherwise
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Quote) == "" {
		return ErrEmptyQuote
	}
	if t.Rating < 1 || t.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
