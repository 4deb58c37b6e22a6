package drill

import (
	"errors"
	"strings"
)

// Drill categories shown in the library filter.
const (
	CategoryShooting     = "shooting"
	CategoryBallHandling = "ballhandling"
	CategoryDefense      = "defense"
	CategoryPassing      = "passing"
	CategoryConditioning = "conditioning"
)

// ValidCategories contains all valid drill categories.
var ValidCategories = []string{
	CategoryShooting,
	CategoryBallHandling,
	CategoryDefense,
	CategoryPassing,
	CategoryConditioning,
}

// Difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ValidDifficulties contains all valid difficulty values.
var ValidDifficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Domain errors
var (
	ErrEmptyTitle        = errors.New("drill title cannot be empty")
	ErrInvalidCategory   = errors.New("drill category must be one of: shooting, ballhandling, defense, passing, conditioning")
	ErrInvalidDifficulty = errors.New("drill difficulty must be one of: beginner, intermediate, advanced")
)

// Drill is a single entry in the public drills library. Description is
// markdown and rendered through the site's markdown pipeline.
type Drill struct {
	ID          string
	Title       string
	Category    string
	Difficulty  string
	Duration    string // free-form, e.g. "15 min"
	Description string
	VideoURL    string
}

// Validate checks required fields and enum membership.
// PRE: Drill struct is populated
// POST: Returns nil if valid, error describing the first violation otherwise
func (d *Drill) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !contains(ValidCategories, d.Category) {
		return ErrInvalidCategory
	}
	if d.Difficulty != "" && !contains(ValidDifficulties, d.Difficulty) {
		return ErrInvalidDifficulty
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
