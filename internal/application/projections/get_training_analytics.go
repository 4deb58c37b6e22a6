package projections

import (
	"context"
	"sort"
	"time"

	bookingStore "beardball/internal/adapters/storage/booking"
	drillStore "beardball/internal/adapters/storage/drill"
	"beardball/internal/domain/booking"
	"beardball/internal/domain/drill"
	"beardball/internal/domain/pricing"
)

// AnalyticsBookingStore defines the booking store interface for analytics.
type AnalyticsBookingStore interface {
	List(ctx context.Context, filter bookingStore.ListFilter) ([]booking.Request, error)
}

// AnalyticsPackageStore resolves package names for the popularity breakdown.
type AnalyticsPackageStore interface {
	List(ctx context.Context) ([]pricing.Package, error)
}

// AnalyticsDrillStore lists drills for the library mix breakdown.
type AnalyticsDrillStore interface {
	List(ctx context.Context, filter drillStore.ListFilter) ([]drill.Drill, error)
}

// TrainingAnalyticsDeps holds dependencies for the analytics projection.
type TrainingAnalyticsDeps struct {
	BookingStore AnalyticsBookingStore
	PackageStore AnalyticsPackageStore
	DrillStore   AnalyticsDrillStore
}

// TrainingAnalyticsInput controls the reporting window.
type TrainingAnalyticsInput struct {
	Now   time.Time // zero means time.Now()
	Weeks int       // zero means defaultAnalyticsWeeks
}

// defaultAnalyticsWeeks is the trailing window for the weekly trend.
const defaultAnalyticsWeeks = 8

// WeeklyCount is one bar of the weekly booking trend.
type WeeklyCount struct {
	WeekStart time.Time
	Label     string // "Jan 2" of the week's Monday
	Count     int
	Percent   int // relative to the busiest week, for bar widths
}

// SlotCount is the demand for one slot of the booking grid.
type SlotCount struct {
	Slot    string
	Count   int
	Percent int
}

// PackageCount is the booking volume of one training package.
type PackageCount struct {
	PackageID string
	Name      string
	Count     int
}

// CategoryCount is the library share of one drill category.
type CategoryCount struct {
	Category string
	Label    string
	Count    int
}

// TrainingAnalytics is the assembled coach analytics page data.
type TrainingAnalytics struct {
	TotalBookings     int
	ConfirmedBookings int
	PendingBookings   int
	ConfirmationRate  int // percent of decided requests that were confirmed

	WeeklyBookings    []WeeklyCount // oldest week first, zero-filled
	SlotPopularity    []SlotCount   // in booking grid order
	PackagePopularity []PackageCount
	DrillMix          []CategoryCount
}

// QueryTrainingAnalytics aggregates booking demand and library composition
// for the coach's analytics screen. Totals cover all bookings; the weekly
// trend covers the trailing window only.
// POST: WeeklyBookings has exactly Weeks entries; SlotPopularity covers
// every offered slot
func QueryTrainingAnalytics(ctx context.Context, input TrainingAnalyticsInput, deps TrainingAnalyticsDeps) (TrainingAnalytics, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = defaultAnalyticsWeeks
	}

	bookings, err := deps.BookingStore.List(ctx, bookingStore.ListFilter{})
	if err != nil {
		return TrainingAnalytics{}, err
	}

	var out TrainingAnalytics
	out.TotalBookings = len(bookings)

	declined := 0
	byWeek := make(map[time.Time]int)
	bySlot := make(map[string]int)
	byPackage := make(map[string]int)
	for _, b := range bookings {
		switch b.Status {
		case booking.StatusConfirmed:
			out.ConfirmedBookings++
		case booking.StatusPending:
			out.PendingBookings++
		case booking.StatusDeclined:
			declined++
		}
		byWeek[startOfWeek(b.CreatedAt)]++
		bySlot[b.TimeSlot]++
		byPackage[b.PackageID]++
	}
	if decided := out.ConfirmedBookings + declined; decided > 0 {
		out.ConfirmationRate = out.ConfirmedBookings * 100 / decided
	}

	// Weekly trend, oldest first, including empty weeks.
	thisWeek := startOfWeek(now)
	maxWeekly := 0
	for i := weeks - 1; i >= 0; i-- {
		start := thisWeek.AddDate(0, 0, -7*i)
		count := byWeek[start]
		if count > maxWeekly {
			maxWeekly = count
		}
		out.WeeklyBookings = append(out.WeeklyBookings, WeeklyCount{
			WeekStart: start,
			Label:     start.Format("Jan 2"),
			Count:     count,
		})
	}
	for i := range out.WeeklyBookings {
		out.WeeklyBookings[i].Percent = percentOf(out.WeeklyBookings[i].Count, maxWeekly)
	}

	maxSlot := 0
	for _, slot := range booking.TimeSlots {
		if bySlot[slot] > maxSlot {
			maxSlot = bySlot[slot]
		}
	}
	for _, slot := range booking.TimeSlots {
		out.SlotPopularity = append(out.SlotPopularity, SlotCount{
			Slot:    slot,
			Count:   bySlot[slot],
			Percent: percentOf(bySlot[slot], maxSlot),
		})
	}

	names := make(map[string]string)
	if deps.PackageStore != nil {
		pkgs, err := deps.PackageStore.List(ctx)
		if err != nil {
			return TrainingAnalytics{}, err
		}
		for _, p := range pkgs {
			names[p.ID] = p.Name
		}
	}
	for id, count := range byPackage {
		name := names[id]
		if name == "" {
			name = id
		}
		out.PackagePopularity = append(out.PackagePopularity, PackageCount{
			PackageID: id,
			Name:      name,
			Count:     count,
		})
	}
	sort.Slice(out.PackagePopularity, func(i, j int) bool {
		a, b := out.PackagePopularity[i], out.PackagePopularity[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	drills, err := deps.DrillStore.List(ctx, drillStore.ListFilter{})
	if err != nil {
		return TrainingAnalytics{}, err
	}
	byCategory := make(map[string]int)
	for _, d := range drills {
		byCategory[d.Category]++
	}
	for _, category := range drill.ValidCategories {
		if byCategory[category] == 0 {
			continue
		}
		out.DrillMix = append(out.DrillMix, CategoryCount{
			Category: category,
			Label:    categoryLabels[category],
			Count:    byCategory[category],
		})
	}
	return out, nil
}

// startOfWeek truncates t to midnight of its Monday.
func startOfWeek(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-back, 0, 0, 0, 0, t.Location())
}

func percentOf(count, max int) int {
	if max == 0 {
		return 0
	}
	return count * 100 / max
}
