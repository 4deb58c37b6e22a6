package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// migrations holds the ordered schema migrations. Each store also creates
// its own table idempotently; migrations exist for cross-store changes that
// cannot live in a single constructor.
var migrations = []string{
	// v1: booking status index for the admin list view
	`CREATE INDEX IF NOT EXISTS idx_booking_status ON bookings(status, created_at)`,
}

// LatestSchemaVersion returns the current schema version number.
func LatestSchemaVersion() int {
	return len(migrations)
}

// MigrateDB applies pending migrations, tracked via PRAGMA user_version.
// PRE: db is a valid, open database connection; store constructors have not
// necessarily run yet, so migrations must tolerate missing tables
// POST: user_version equals LatestSchemaVersion()
func MigrateDB(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			// Index migrations against tables created later are retried on
			// next startup; report anything else.
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("record migration %d: %w", i+1, err)
		}
	}
	return nil
}
