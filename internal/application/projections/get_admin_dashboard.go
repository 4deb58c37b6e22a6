package projections

import (
	"context"
	"sort"

	bookingStore "beardball/internal/adapters/storage/booking"
	"beardball/internal/domain/booking"
)

// DashboardBookingStore defines the booking store interface for the dashboard.
type DashboardBookingStore interface {
	List(ctx context.Context, filter bookingStore.ListFilter) ([]booking.Request, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// DashboardDrillStore counts library entries for the dashboard.
type DashboardDrillStore interface {
	Count(ctx context.Context) (int, error)
}

// AdminDashboardDeps holds dependencies for the admin dashboard projection.
type AdminDashboardDeps struct {
	BookingStore DashboardBookingStore
	DrillStore   DashboardDrillStore
}

// AdminDashboard summarizes site activity for the admin landing screen.
type AdminDashboard struct {
	PendingBookings   int
	ConfirmedBookings int
	DrillCount        int
	RecentBookings    []booking.Request
}

// maxRecentBookings caps the dashboard's recent activity list.
const maxRecentBookings = 10

// QueryAdminDashboard assembles booking counts and the most recent requests.
// POST: RecentBookings holds at most maxRecentBookings entries, newest first
func QueryAdminDashboard(ctx context.Context, deps AdminDashboardDeps) (AdminDashboard, error) {
	var dash AdminDashboard
	var err error

	if dash.PendingBookings, err = deps.BookingStore.CountByStatus(ctx, booking.StatusPending); err != nil {
		return AdminDashboard{}, err
	}
	if dash.ConfirmedBookings, err = deps.BookingStore.CountByStatus(ctx, booking.StatusConfirmed); err != nil {
		return AdminDashboard{}, err
	}
	if dash.DrillCount, err = deps.DrillStore.Count(ctx); err != nil {
		return AdminDashboard{}, err
	}

	recent, err := deps.BookingStore.List(ctx, bookingStore.ListFilter{})
	if err != nil {
		return AdminDashboard{}, err
	}
	// The store ordering is not part of its contract; newest-first is part
	// of ours, so sort before truncating.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > maxRecentBookings {
		recent = recent[:maxRecentBookings]
	}
	dash.RecentBookings = recent
	return dash, nil
}
