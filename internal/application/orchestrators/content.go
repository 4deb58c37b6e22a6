package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	contentStore "beardball/internal/adapters/storage/content"
	domain "beardball/internal/domain/content"
)

// ContentService owns the site's content document. All mutations funnel
// through one mutex, so concurrent edits from separate admin tabs serialize
// into a last-write-wins sequence over whole key paths rather than torn
// partial documents.
type ContentService struct {
	store contentStore.DocumentStore

	mu     sync.Mutex
	doc    domain.Document // nil until first load
	loaded bool
}

// NewContentService creates a service backed by the given document store.
func NewContentService(store contentStore.DocumentStore) *ContentService {
	return &ContentService{store: store}
}

// Document returns a copy of the current content document, loading it from
// the store on first use. Callers can mutate the copy freely.
func (s *ContentService) Document(ctx context.Context) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return domain.Clone(s.doc), nil
}

// GetValue resolves a dot-delimited key path against the current document.
// The boolean distinguishes "stored falsy value" from "no override here":
// an empty string or zero saved by an editor still returns found=true.
func (s *ContentService) GetValue(ctx context.Context, path string) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, false, err
	}
	v, found := domain.Resolve(s.doc, path)
	return v, found, nil
}

// Update sets one key path and persists the whole document, creating any
// missing intermediate mappings along the path. The returned status says
// where the write landed; err is non-nil only when no layer took it.
// POST: on success the in-memory document reflects the new value
func (s *ContentService) Update(ctx context.Context, path string, value any) (contentStore.SaveStatus, error) {
	if path == "" {
		return contentStore.SaveStatus{}, errors.New("key path cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return contentStore.SaveStatus{}, err
	}

	next := domain.Set(domain.Clone(s.doc), path, value)
	status, err := s.store.Save(ctx, next)
	if err != nil {
		slog.Error("content_event", "event", "save_failed", "path", path, "error", err)
		return status, fmt.Errorf("save content: %w", err)
	}

	s.doc = next
	slog.Info("content_event", "event", "content_saved", "path", path, "persisted", status.Persisted())
	return status, nil
}

// Reset discards every stored override and returns the default document.
// POST: subsequent reads resolve against the defaults
func (s *ContentService) Reset(ctx context.Context) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset content: %w", err)
	}
	s.doc = domain.DefaultDocument()
	s.loaded = true
	slog.Info("content_event", "event", "content_reset", "site_id", domain.SiteID)
	return domain.Clone(s.doc), nil
}

// ensureLoaded populates the cached document. An empty store is not an
// error; the defaults stand in until the first save.
// PRE: s.mu held
func (s *ContentService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, contentStore.ErrNotFound) {
			s.doc = domain.DefaultDocument()
			s.loaded = true
			return nil
		}
		return fmt.Errorf("load content: %w", err)
	}
	s.doc = doc
	s.loaded = true
	return nil
}
