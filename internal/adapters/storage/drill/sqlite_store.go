package drill

import (
	"context"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/drill"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: drills table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS drills (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		difficulty TEXT NOT NULL DEFAULT '',
		duration TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		video_url TEXT NOT NULL DEFAULT ''
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves a drill by its ID.
// PRE: id is non-empty
// POST: returns the drill or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Drill, error) {
	var d domain.Drill
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, category, difficulty, duration, description, video_url FROM drills WHERE id = ?`, id,
	).Scan(&d.ID, &d.Title, &d.Category, &d.Difficulty, &d.Duration, &d.Description, &d.VideoURL)
	return d, err
}

// Save inserts or updates a drill.
// PRE: value has a non-empty ID
// POST: drill is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Drill) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drills (id, title, category, difficulty, duration, description, video_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title=excluded.title, category=excluded.category,
		 difficulty=excluded.difficulty, duration=excluded.duration,
		 description=excluded.description, video_url=excluded.video_url`,
		value.ID, value.Title, value.Category, value.Difficulty, value.Duration, value.Description, value.VideoURL,
	)
	return err
}

// Delete removes a drill by ID.
// PRE: id is non-empty
// POST: drill is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM drills WHERE id = ?`, id)
	return err
}

// List returns drills matching the filter, ordered by title.
// POST: returns matching drills or empty slice
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Drill, error) {
	query := `SELECT id, title, category, difficulty, duration, description, video_url FROM drills`
	var args []any
	if filter.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY title`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Drill
	for rows.Next() {
		var d domain.Drill
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Difficulty, &d.Duration, &d.Description, &d.VideoURL); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count returns the total number of drills.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drills`).Scan(&n)
	return n, err
}
