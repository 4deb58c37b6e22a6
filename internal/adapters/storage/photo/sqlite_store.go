package photo

import (
	"context"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/photo"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: photos table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS photos (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		caption TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves a photo by its ID.
// PRE: id is non-empty
// POST: returns the photo or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Photo, error) {
	var p domain.Photo
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, caption, category, created_at FROM photos WHERE id = ?`, id,
	).Scan(&p.ID, &p.Source, &p.Caption, &p.Category, &p.CreatedAt)
	return p, err
}

// Save inserts or updates a photo.
// PRE: value has a non-empty ID
// POST: photo is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Photo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO photos (id, source, caption, category, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET source=excluded.source, caption=excluded.caption, category=excluded.category`,
		value.ID, value.Source, value.Caption, value.Category, value.CreatedAt,
	)
	return err
}

// Delete removes a photo by ID.
// PRE: id is non-empty
// POST: photo is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	return err
}

// List returns photos matching the filter, newest first.
// POST: returns matching photos or empty slice
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Photo, error) {
	query := `SELECT id, source, caption, category, created_at FROM photos`
	var args []any
	if filter.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Photo
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.Source, &p.Caption, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
