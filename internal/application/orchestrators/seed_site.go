package orchestrators

import (
	"context"
	"log/slog"

	"beardball/internal/domain/drill"
	"beardball/internal/domain/pricing"
	"beardball/internal/domain/testimonial"

	"github.com/google/uuid"
)

// DrillStoreForSeed defines the store interface needed by SeedSite.
type DrillStoreForSeed interface {
	Save(ctx context.Context, d drill.Drill) error
	Count(ctx context.Context) (int, error)
}

// PackageStoreForSeed defines the store interface needed by SeedSite.
type PackageStoreForSeed interface {
	Save(ctx context.Context, p pricing.Package) error
	Count(ctx context.Context) (int, error)
}

// TestimonialStoreForSeed defines the store interface needed by SeedSite.
type TestimonialStoreForSeed interface {
	Save(ctx context.Context, t testimonial.Testimonial) error
	Count(ctx context.Context) (int, error)
}

// SeedSiteDeps holds dependencies for SeedSite.
type SeedSiteDeps struct {
	DrillStore       DrillStoreForSeed
	PackageStore     PackageStoreForSeed
	TestimonialStore TestimonialStoreForSeed
}

// ExecuteSeedSite populates the starter drills, training packages, and
// testimonials when their tables are empty. Each collection seeds
// independently so clearing one in the admin does not resurrect the others.
func ExecuteSeedSite(ctx context.Context, deps SeedSiteDeps) error {
	if err := seedDrills(ctx, deps.DrillStore); err != nil {
		return err
	}
	if err := seedPackages(ctx, deps.PackageStore); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, deps.TestimonialStore); err != nil {
		return err
	}
	return nil
}

func seedDrills(ctx context.Context, store DrillStoreForSeed) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	drills := []drill.Drill{
		{
			ID:          uuid.New().String(),
			Title:       "Form Shooting Progression",
			Category:    drill.CategoryShooting,
			Difficulty:  drill.DifficultyBeginner,
			Duration:    "15 min",
			Description: "Master proper shooting form with close-range repetitions and gradual distance increase.\n\n1. Start 3 feet from the basket\n2. Focus on proper hand placement\n3. Use consistent follow-through\n4. Make 10 shots before moving back\n\n**Tip:** Keep your elbow under the ball and follow through with a snap of the wrist.",
		},
		{
			ID:          uuid.New().String(),
			Title:       "Two-Ball Dribbling",
			Category:    drill.CategoryBallHandling,
			Difficulty:  drill.DifficultyIntermediate,
			Duration:    "20 min",
			Description: "Improve hand coordination and ball control using two basketballs simultaneously.\n\n1. Start with simultaneous dribbling\n2. Progress to alternating patterns\n3. Add movement while dribbling\n4. Practice for 30 seconds, rest 15 seconds\n\n**Tip:** Keep your head up and maintain control of both balls throughout the drill.",
		},
		{
			ID:          uuid.New().String(),
			Title:       "Defensive Slides",
			Category:    drill.CategoryDefense,
			Difficulty:  drill.DifficultyBeginner,
			Duration:    "10 min",
			Description: "Build defensive footwork and lateral movement fundamentals.\n\n1. Start in defensive stance\n2. Slide laterally without crossing feet\n3. Maintain low center of gravity\n4. Keep hands active and ready\n\n**Tip:** Stay low and push off with the outside foot when changing direction.",
		},
	}
	for _, d := range drills {
		if err := store.Save(ctx, d); err != nil {
			return err
		}
	}
	slog.Info("seed_event", "event", "drills_seeded", "count", len(drills))
	return nil
}

func seedPackages(ctx context.Context, store PackageStoreForSeed) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	packages := []pricing.Package{
		{
			ID:          "fundamentals",
			Name:        "Fundamentals Package",
			Duration:    "1 Hour",
			Price:       25,
			Description: "Perfect for beginners focusing on basic skills",
			Features:    []string{"Ball Handling Basics", "Shooting Form", "Defensive Stance", "Court Awareness"},
			SortOrder:   1,
		},
		{
			ID:          "standard",
			Name:        "Standard Training",
			Duration:    "1.5 Hours",
			Price:       30,
			Description: "Comprehensive training for skill development",
			Features:    []string{"Advanced Techniques", "Game Situations", "Skill Combinations", "Performance Analysis"},
			Popular:     true,
			SortOrder:   2,
		},
		{
			ID:            "elite",
			Name:          "Elite Package",
			Duration:      "1.5 Hours",
			Price:         25,
			OriginalPrice: 30,
			Description:   "Discounted premium training package",
			Features:      []string{"All 20 Skill Modules", "Personalized Program", "Video Analysis", "Progress Tracking"},
			SortOrder:     3,
		},
	}
	for _, p := range packages {
		if err := store.Save(ctx, p); err != nil {
			return err
		}
	}
	slog.Info("seed_event", "event", "packages_seeded", "count", len(packages))
	return nil
}

func seedTestimonials(ctx context.Context, store TestimonialStoreForSeed) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	testimonials := []testimonial.Testimonial{
		{
			ID:       uuid.New().String(),
			Name:     "Marcus Johnson",
			Role:     "High School Player",
			Quote:    "Coach Beard transformed my shooting mechanics. My field goal percentage improved by 25% in just 3 months.",
			Rating:   5,
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		},
		{
			ID:       uuid.New().String(),
			Name:     "Sarah Williams",
			Role:     "College Recruit",
			Quote:    "The personalized training approach helped me develop court vision I never knew I had. Now I lead my team in assists.",
			Rating:   5,
			ImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		},
		{
			ID:       uuid.New().String(),
			Name:     "David Chen",
			Role:     "Amateur Player",
			Quote:    "The ball handling drills are incredible. I went from struggling with basic dribbles to executing complex moves confidently.",
			Rating:   5,
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		},
	}
	for _, tm := range testimonials {
		if err := store.Save(ctx, tm); err != nil {
			return err
		}
	}
	slog.Info("seed_event", "event", "testimonials_seeded", "count", len(testimonials))
	return nil
}
