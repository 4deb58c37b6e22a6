package projections

import (
	"context"
	"sort"

	"beardball/internal/domain/booking"
	"beardball/internal/domain/pricing"
)

// BookingPagePackageStore defines the package store interface for the booking page.
type BookingPagePackageStore interface {
	List(ctx context.Context) ([]pricing.Package, error)
}

// BookingPageDeps holds dependencies for the booking page projection.
type BookingPageDeps struct {
	PackageStore BookingPagePackageStore
}

// BookingPage is the assembled public booking page data.
type BookingPage struct {
	Packages  []pricing.Package
	TimeSlots []string
}

// QueryBookingPage returns the bookable packages in display order along with
// the offered time slot grid.
func QueryBookingPage(ctx context.Context, deps BookingPageDeps) (BookingPage, error) {
	packages, err := deps.PackageStore.List(ctx)
	if err != nil {
		return BookingPage{}, err
	}
	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].SortOrder < packages[j].SortOrder
	})
	return BookingPage{
		Packages:  packages,
		TimeSlots: booking.TimeSlots,
	}, nil
}
