package pricing

import (
	"context"
	"encoding/json"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/pricing"
)

// SQLiteStore implements Store using SQLite. Features are stored as a JSON
// array in a single column; they are only ever read as a whole list.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: packages table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS packages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		duration TEXT NOT NULL,
		price INTEGER NOT NULL,
		original_price INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		features TEXT NOT NULL DEFAULT '[]',
		popular INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves a package by its ID.
// PRE: id is non-empty
// POST: returns the package or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Package, error) {
	var p domain.Package
	var features string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, duration, price, original_price, description, features, popular, sort_order
		 FROM packages WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Duration, &p.Price, &p.OriginalPrice, &p.Description, &features, &p.Popular, &p.SortOrder)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		p.Features = nil
	}
	return p, nil
}

// Save inserts or updates a package.
// PRE: value has a non-empty ID
// POST: package is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Package) error {
	features, err := json.Marshal(value.Features)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO packages (id, name, duration, price, original_price, description, features, popular, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, duration=excluded.duration, price=excluded.price,
		 original_price=excluded.original_price, description=excluded.description, features=excluded.features,
		 popular=excluded.popular, sort_order=excluded.sort_order`,
		value.ID, value.Name, value.Duration, value.Price, value.OriginalPrice, value.Description,
		string(features), value.Popular, value.SortOrder,
	)
	return err
}

// Delete removes a package by ID.
// PRE: id is non-empty
// POST: package is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM packages WHERE id = ?`, id)
	return err
}

// List returns all packages in display order.
// POST: returns all packages or empty slice
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, duration, price, original_price, description, features, popular, sort_order
		 FROM packages ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Package
	for rows.Next() {
		var p domain.Package
		var features string
		if err := rows.Scan(&p.ID, &p.Name, &p.Duration, &p.Price, &p.OriginalPrice, &p.Description, &features, &p.Popular, &p.SortOrder); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
			p.Features = nil
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count returns the total number of packages.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages`).Scan(&n)
	return n, err
}
