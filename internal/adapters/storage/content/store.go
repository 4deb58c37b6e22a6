package content

import (
	"context"
	"errors"

	domain "beardball/internal/domain/content"
)

// ErrNotFound signals the backing store holds no document for the site.
var ErrNotFound = errors.New("content document not found")

// SaveStatus reports where a save landed. Remote unavailability is expected
// and silent; only the local layer failing means durability was lost.
type SaveStatus struct {
	RemoteAttempted bool
	RemoteOK        bool
	LocalOK         bool
}

// Persisted reports whether the save reached its authoritative layer: the
// remote store when one is configured, the local store otherwise.
// INVARIANT: s is not mutated
func (s SaveStatus) Persisted() bool {
	if s.RemoteAttempted {
		return s.RemoteOK
	}
	return s.LocalOK
}

// Durable reports whether at least one layer holds the document.
// INVARIANT: s is not mutated
func (s SaveStatus) Durable() bool {
	return s.RemoteOK || s.LocalOK
}

// DocumentStore persists the site's single content document.
type DocumentStore interface {
	// Load returns the current document, or ErrNotFound when the store is empty.
	Load(ctx context.Context) (domain.Document, error)
	// Save persists the full document. The status reports which layers took
	// the write; err is non-nil only when no layer did.
	Save(ctx context.Context, doc domain.Document) (SaveStatus, error)
	// Reset deletes the persisted document so the next Load falls back to
	// the hardcoded defaults.
	Reset(ctx context.Context) error
}
