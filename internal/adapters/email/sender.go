package email

import (
	"context"
	"time"
)

// SendRequest contains the data needed to send an email via an external provider.
type SendRequest struct {
	To      []string
	From    string // e.g. "Beard Basketball <noreply@beardbasketball.com>"
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult contains the response from the email provider.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers transactional mail: booking confirmations to players and
// new-booking alerts to the coach.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
