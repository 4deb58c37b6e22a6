package account

import (
	"context"
	"database/sql"
	"time"

	"beardball/internal/adapters/storage"
	domain "beardball/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: accounts table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	)`)
	return &SQLiteStore{db: db}
}

// GetByID retrieves an account by its ID.
// PRE: id is non-empty
// POST: returns the account or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM accounts WHERE id = ?`, id))
}

// GetByEmail retrieves an account by email.
// PRE: email is non-empty
// POST: returns the account or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM accounts WHERE email = ?`, email))
}

// Save inserts or updates an account.
// PRE: value has a non-empty ID
// POST: account is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Account) error {
	var lockedUntil any
	if !value.LockedUntil.IsZero() {
		lockedUntil = value.LockedUntil.UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, role, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET email=excluded.email, password_hash=excluded.password_hash,
		 role=excluded.role, failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		value.ID, value.Email, value.PasswordHash, value.Role,
		value.CreatedAt.UTC().Format(time.RFC3339), value.FailedLogins, lockedUntil,
	)
	return err
}

// Count returns the total number of accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n)
	return n, err
}

// scanOne decodes a single account row, parsing the stored timestamps.
func (s *SQLiteStore) scanOne(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &createdAt, &a.FailedLogins, &lockedUntil)
	if err != nil {
		return a, err
	}
	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		a.CreatedAt = t
	}
	if lockedUntil.Valid && lockedUntil.String != "" {
		if t, perr := time.Parse(time.RFC3339, lockedUntil.String); perr == nil {
			a.LockedUntil = t
		}
	}
	return a, nil
}
