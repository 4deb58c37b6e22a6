package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/content"
)

// SQLiteStore is the local persistence layer for the content document —
// one row per site, the whole tree serialized as JSON.
type SQLiteStore struct {
	db     storage.SQLDB
	siteID string
}

// Compile-time check that *SQLiteStore satisfies DocumentStore.
var _ DocumentStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: site_content table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS site_content (
		site_id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db, siteID: domain.SiteID}
}

// Load reads and decodes the document for the site.
// POST: returns the document, or ErrNotFound when no row exists
func (s *SQLiteStore) Load(ctx context.Context) (domain.Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM site_content WHERE site_id = ?`, s.siteID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	var doc domain.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		// A corrupt row is treated as absent; the caller falls back to defaults.
		return nil, ErrNotFound
	}
	return doc, nil
}

// Save upserts the full document with a fresh updated_at timestamp.
// POST: row persisted; status.LocalOK set on success
func (s *SQLiteStore) Save(ctx context.Context, doc domain.Document) (SaveStatus, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return SaveStatus{}, fmt.Errorf("encode content: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO site_content (site_id, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(site_id) DO UPDATE SET content=excluded.content, updated_at=excluded.updated_at`,
		s.siteID, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return SaveStatus{}, fmt.Errorf("save content: %w", err)
	}
	return SaveStatus{LocalOK: true}, nil
}

// Reset deletes the persisted document.
// POST: subsequent Load returns ErrNotFound
func (s *SQLiteStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM site_content WHERE site_id = ?`, s.siteID)
	if err != nil {
		return fmt.Errorf("reset content: %w", err)
	}
	return nil
}
