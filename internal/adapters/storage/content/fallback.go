package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "beardball/internal/domain/content"
)

// FallbackStore composes the optional remote store with the local one.
// Loads try remote first and degrade silently; saves write remote
// best-effort and always write local as the durability backup. A load that
// finds nothing anywhere yields the hardcoded default document, so callers
// never see an error from Load.
type FallbackStore struct {
	remote *RemoteStore // nil when the site runs local-only
	local  DocumentStore
}

// Compile-time check that *FallbackStore satisfies DocumentStore.
var _ DocumentStore = (*FallbackStore)(nil)

// NewFallbackStore composes remote (may be nil) and local stores.
// PRE: local is non-nil
// POST: Returns a store whose Load never errors
func NewFallbackStore(remote *RemoteStore, local DocumentStore) *FallbackStore {
	return &FallbackStore{remote: remote, local: local}
}

// Load returns the best available document: remote, then local, then the
// hardcoded defaults. All failure paths degrade, none propagate.
// POST: always returns a non-nil document and a nil error
func (f *FallbackStore) Load(ctx context.Context) (domain.Document, error) {
	if f.remote != nil {
		doc, err := f.remote.Select(ctx)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("remote_store_unavailable", "op", "load", "error", err.Error())
		}
	}

	doc, err := f.local.Load(ctx)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		slog.Error("local_content_load_failed", "error", err.Error())
	}
	return domain.DefaultDocument(), nil
}

// Save writes the document to every configured layer. The local write always
// happens, remote outcome notwithstanding — it is the last line of
// durability, and its failure is the only one meriting an error.
// POST: status reports per-layer outcomes; err non-nil only when nothing
// took the write
func (f *FallbackStore) Save(ctx context.Context, doc domain.Document) (SaveStatus, error) {
	var status SaveStatus

	if f.remote != nil {
		status.RemoteAttempted = true
		if err := f.remote.Upsert(ctx, doc); err != nil {
			slog.Warn("remote_store_unavailable", "op", "save", "error", err.Error())
		} else {
			status.RemoteOK = true
		}
	}

	localStatus, err := f.local.Save(ctx, doc)
	if err != nil {
		slog.Error("local_content_save_failed", "error", err.Error())
	}
	status.LocalOK = localStatus.LocalOK

	if !status.Durable() {
		return status, fmt.Errorf("content save failed on every layer: %w", err)
	}
	return status, nil
}

// Reset deletes the document everywhere. Remote deletion is best-effort;
// only a local failure is reported.
// POST: next Load reproduces the default document
func (f *FallbackStore) Reset(ctx context.Context) error {
	if f.remote != nil {
		if err := f.remote.Delete(ctx); err != nil {
			slog.Warn("remote_store_unavailable", "op", "reset", "error", err.Error())
		}
	}
	return f.local.Reset(ctx)
}
