package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"beardball/internal/adapters/email"
	"beardball/internal/domain/booking"
	"beardball/internal/domain/pricing"

	"github.com/google/uuid"
)

// BookingStoreForCreate defines the store interface needed by CreateBooking.
type BookingStoreForCreate interface {
	Save(ctx context.Context, r booking.Request) error
}

// PackageStoreForCreate resolves the booked package for validation and the
// confirmation email.
type PackageStoreForCreate interface {
	GetByID(ctx context.Context, id string) (pricing.Package, error)
}

// CreateBookingInput carries the form fields from the public booking page.
type CreateBookingInput struct {
	Name      string
	Email     string
	Phone     string
	PackageID string
	Date      string
	TimeSlot  string
	Notes     string
}

// CreateBookingDeps holds dependencies for CreateBooking.
type CreateBookingDeps struct {
	BookingStore BookingStoreForCreate
	PackageStore PackageStoreForCreate
	EmailSender  email.Sender // nil skips confirmation mail
	CoachEmail   string       // alert recipient; empty skips the alert
}

// CreateBookingResult carries the persisted request.
type CreateBookingResult struct {
	Booking booking.Request
}

// ExecuteCreateBooking validates and saves a session request, then sends the
// confirmation and coach alert best-effort. Mail failures never fail the
// booking; the coach can still see it in the admin list.
// PRE: input comes straight from the public form, untrusted
// POST: booking persisted with status pending
func ExecuteCreateBooking(ctx context.Context, input CreateBookingInput, deps CreateBookingDeps) (CreateBookingResult, error) {
	pkg, err := deps.PackageStore.GetByID(ctx, input.PackageID)
	if err != nil {
		return CreateBookingResult{}, fmt.Errorf("unknown package %q: %w", input.PackageID, err)
	}

	req := booking.Request{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		PackageID: input.PackageID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Notes:     input.Notes,
		Status:    booking.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := req.Validate(); err != nil {
		return CreateBookingResult{}, err
	}

	if err := deps.BookingStore.Save(ctx, req); err != nil {
		return CreateBookingResult{}, fmt.Errorf("save booking: %w", err)
	}

	slog.Info("booking_event", "event", "booking_created", "booking_id", req.ID,
		"package", pkg.Name, "date", req.Date, "slot", req.TimeSlot)

	if deps.EmailSender != nil {
		sendBookingMail(ctx, deps, req, pkg)
	}

	return CreateBookingResult{Booking: req}, nil
}

func sendBookingMail(ctx context.Context, deps CreateBookingDeps, req booking.Request, pkg pricing.Package) {
	confirmation := email.SendRequest{
		To:      []string{req.Email},
		Subject: "Your Beard Basketball session request",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your request for a <strong>%s</strong> session on %s at %s. "+
				"Coach Beard will confirm shortly.</p>",
			html.EscapeString(req.Name), html.EscapeString(pkg.Name),
			html.EscapeString(req.Date), html.EscapeString(req.TimeSlot)),
	}
	if _, err := deps.EmailSender.Send(ctx, confirmation); err != nil {
		slog.Warn("booking_event", "event", "confirmation_email_failed", "booking_id", req.ID, "error", err)
	}

	if deps.CoachEmail == "" {
		return
	}
	alert := email.SendRequest{
		To:      []string{deps.CoachEmail},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New booking: %s on %s", pkg.Name, req.Date),
		HTML: fmt.Sprintf(
			"<p>%s (%s) requested <strong>%s</strong> on %s at %s.</p><p>Notes: %s</p>",
			html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(pkg.Name),
			html.EscapeString(req.Date), html.EscapeString(req.TimeSlot), html.EscapeString(req.Notes)),
	}
	if _, err := deps.EmailSender.Send(ctx, alert); err != nil {
		slog.Warn("booking_event", "event", "coach_alert_failed", "booking_id", req.ID, "error", err)
	}
}
