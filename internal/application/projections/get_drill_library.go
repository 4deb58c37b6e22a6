package projections

import (
	"context"

	drillStore "beardball/internal/adapters/storage/drill"
	"beardball/internal/domain/drill"
)

// DrillLibraryStore defines the drill store interface for the library page.
type DrillLibraryStore interface {
	List(ctx context.Context, filter drillStore.ListFilter) ([]drill.Drill, error)
}

// DrillLibraryDeps holds dependencies for the drill library projection.
type DrillLibraryDeps struct {
	DrillStore DrillLibraryStore
}

// DrillLibraryInput holds the public library filters.
type DrillLibraryInput struct {
	Category string // empty shows all categories
}

// CategoryGroup is one category section of the library page.
type CategoryGroup struct {
	Category string
	Label    string
	Drills   []drill.Drill
}

// DrillLibrary is the assembled library page data.
type DrillLibrary struct {
	Groups []CategoryGroup
	Total  int
}

// categoryLabels maps category slugs to their display names.
var categoryLabels = map[string]string{
	drill.CategoryShooting:     "Shooting",
	drill.CategoryBallHandling: "Ball Handling",
	drill.CategoryDefense:      "Defense",
	drill.CategoryPassing:      "Passing",
	drill.CategoryConditioning: "Conditioning",
}

// QueryDrillLibrary groups drills by category for the public library page.
// Groups follow the canonical category order; empty categories are omitted.
// POST: every returned drill matches the filter; Total counts all of them
func QueryDrillLibrary(ctx context.Context, input DrillLibraryInput, deps DrillLibraryDeps) (DrillLibrary, error) {
	drills, err := deps.DrillStore.List(ctx, drillStore.ListFilter{Category: input.Category})
	if err != nil {
		return DrillLibrary{}, err
	}

	byCategory := make(map[string][]drill.Drill)
	for _, d := range drills {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	var lib DrillLibrary
	for _, category := range drill.ValidCategories {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}
		lib.Groups = append(lib.Groups, CategoryGroup{
			Category: category,
			Label:    categoryLabels[category],
			Drills:   group,
		})
		lib.Total += len(group)
	}
	return lib, nil
}
