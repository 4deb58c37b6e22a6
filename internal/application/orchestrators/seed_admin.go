package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"beardball/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAdminInput carries the bootstrap admin credentials from the environment.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates the admin account on first boot. Idempotent: an
// existing account with the email is left alone, password included, so a
// changed env var never silently rewrites credentials.
// PRE: input.Email and input.Password come from BEARD_ADMIN_EMAIL/PASSWORD
// POST: exactly one admin account with input.Email exists
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	if input.Email == "" || input.Password == "" {
		slog.Warn("seed_event", "event", "admin_seed_skipped", "reason", "credentials_not_configured")
		return nil
	}

	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		return nil // already seeded
	}

	acct := account.Account{
		ID:    uuid.New().String(),
		Email: input.Email,
		Role:  account.RoleAdmin,
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	if err := acct.Validate(); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return fmt.Errorf("save admin account: %w", err)
	}

	slog.Info("seed_event", "event", "admin_seeded", "email", input.Email)
	return nil
}
