package testimonial

import (
	"context"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/testimonial"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: testimonials table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS testimonials (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		quote TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 5,
		image_url TEXT NOT NULL DEFAULT ''
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves a testimonial by its ID.
// PRE: id is non-empty
// POST: returns the testimonial or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Testimonial, error) {
	var t domain.Testimonial
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, quote, rating, image_url FROM testimonials WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.Role, &t.Quote, &t.Rating, &t.ImageURL)
	return t, err
}

// Save inserts or updates a testimonial.
// PRE: value has a non-empty ID
// POST: testimonial is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Testimonial) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO testimonials (id, name, role, quote, rating, image_url)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, role=excluded.role, quote=excluded.quote,
		 rating=excluded.rating, image_url=excluded.image_url`,
		value.ID, value.Name, value.Role, value.Quote, value.Rating, value.ImageURL,
	)
	return err
}

// Delete removes a testimonial by ID.
// PRE: id is non-empty
// POST: testimonial is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

// List returns all testimonials ordered by name.
// POST: returns all testimonials or empty slice
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role, quote, rating, image_url FROM testimonials ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Quote, &t.Rating, &t.ImageURL); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Count returns the total number of testimonials.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}
