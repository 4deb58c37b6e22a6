package booking

import (
	"context"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/booking"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: bookings table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		package_id TEXT NOT NULL,
		date TEXT NOT NULL,
		time_slot TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves a booking request by its ID.
// PRE: id is non-empty
// POST: returns the request or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Request, error) {
	var r domain.Request
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, package_id, date, time_slot, notes, status, created_at
		 FROM bookings WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.PackageID, &r.Date, &r.TimeSlot, &r.Notes, &r.Status, &r.CreatedAt)
	return r, err
}

// Save inserts or updates a booking request.
// PRE: value has a non-empty ID
// POST: request is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Request) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (id, name, email, phone, package_id, date, time_slot, notes, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, email=excluded.email, phone=excluded.phone,
		 package_id=excluded.package_id, date=excluded.date, time_slot=excluded.time_slot,
		 notes=excluded.notes, status=excluded.status`,
		value.ID, value.Name, value.Email, value.Phone, value.PackageID, value.Date, value.TimeSlot,
		value.Notes, value.Status, value.CreatedAt,
	)
	return err
}

// List returns bookings matching the filter, newest first.
// POST: returns matching requests or empty slice
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Request, error) {
	query := `SELECT id, name, email, phone, package_id, date, time_slot, notes, status, created_at FROM bookings`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Request
	for rows.Next() {
		var r domain.Request
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.PackageID, &r.Date, &r.TimeSlot, &r.Notes, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// CountByStatus returns the number of bookings in the given status.
// PRE: status is non-empty
func (s *SQLiteStore) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE status = ?`, status).Scan(&n)
	return n, err
}
