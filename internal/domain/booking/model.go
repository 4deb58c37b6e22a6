package booking

import (
	"errors"
	"strings"
	"time"
)

// Booking status constants.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// ValidStatuses contains all valid booking statuses.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled}

// TimeSlots is the fixed slot grid offered on the booking page.
var TimeSlots = []string{
	"8:00 AM", "9:30 AM", "11:00 AM", "12:30 PM",
	"2:00 PM", "3:30 PM", "5:00 PM", "6:30 PM",
}

// Domain errors
var (
	ErrEmptyName      = errors.New("booking name cannot be empty")
	ErrInvalidEmail   = errors.New("booking email must contain '@'")
	ErrEmptyPackage   = errors.New("booking must reference a package")
	ErrEmptyDate      = errors.New("booking date cannot be empty")
	ErrInvalidSlot    = errors.New("booking time must be one of the offered slots")
	ErrInvalidStatus  = errors.New("booking status must be one of: pending, confirmed, declined, cancelled")
)

// Request is a training session booking submitted from the public site.
type Request struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	PackageID string
	Date      string // YYYY-MM-DD as submitted
	TimeSlot  string
	Notes     string
	Status    string
	CreatedAt time.Time
}

// Validate checks the request's invariants.
// PRE: Request struct is populated; Status defaults to pending when empty
// POST: Returns nil if valid, error describing the first violation otherwise
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	if r.PackageID == "" {
		return ErrEmptyPackage
	}
	if r.Date == "" {
		return ErrEmptyDate
	}
	if !validSlot(r.TimeSlot) {
		return ErrInvalidSlot
	}
	if r.Status != "" && !validStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
