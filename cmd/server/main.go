package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "beardball/internal/adapters/email"
	web "beardball/internal/adapters/http"
	"beardball/internal/adapters/http/perf"
	"beardball/internal/adapters/storage"
	accountStore "beardball/internal/adapters/storage/account"
	bookingStore "beardball/internal/adapters/storage/booking"
	contentStore "beardball/internal/adapters/storage/content"
	drillStore "beardball/internal/adapters/storage/drill"
	photoStore "beardball/internal/adapters/storage/photo"
	pricingStore "beardball/internal/adapters/storage/pricing"
	testimonialStore "beardball/internal/adapters/storage/testimonial"
	"beardball/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if os.Getenv("BEARD_ENV") == "production" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	// WAL mode, busy timeout, and foreign keys for concurrent web workloads
	dbPath := envOrDefault("BEARD_DB_PATH", "beardball.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Store constructors create their tables; migrations build on top of
	// those tables, so they run after.
	acctStore := accountStore.NewSQLiteStore(timedDB)
	localContent := contentStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:     acctStore,
		BookingStore:     bookingStore.NewSQLiteStore(timedDB),
		DrillStore:       drillStore.NewSQLiteStore(timedDB),
		PackageStore:     pricingStore.NewSQLiteStore(timedDB),
		TestimonialStore: testimonialStore.NewSQLiteStore(timedDB),
		PhotoStore:       photoStore.NewSQLiteStore(timedDB),
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Content persistence: an optional remote content API backed by the
	// local SQLite copy. Without the remote configured, everything is local.
	var remote *contentStore.RemoteStore
	if apiURL := os.Getenv("BEARD_CONTENT_API_URL"); apiURL != "" {
		remote = contentStore.NewRemoteStore(apiURL, os.Getenv("BEARD_CONTENT_API_KEY"))
		log.Println("Remote content store configured")
	}
	stores.ContentService = orchestrators.NewContentService(
		contentStore.NewFallbackStore(remote, localContent))

	// Seed the admin account from the environment (idempotent)
	seedInput := orchestrators.SeedAdminInput{
		Email:    os.Getenv("BEARD_ADMIN_EMAIL"),
		Password: os.Getenv("BEARD_ADMIN_PASSWORD"),
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedInput, orchestrators.SeedAdminDeps{
		AccountStore: acctStore,
	}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed starter drills, packages, and testimonials on first boot
	if err := orchestrators.ExecuteSeedSite(context.Background(), orchestrators.SeedSiteDeps{
		DrillStore:       stores.DrillStore,
		PackageStore:     stores.PackageStore,
		TestimonialStore: stores.TestimonialStore,
	}); err != nil {
		log.Fatalf("failed to seed site data: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("BEARD_RESEND_KEY")
	emailFrom := envOrDefault("BEARD_EMAIL_FROM", "B.E.A.R.D. Basketball <noreply@beardbasketball.com>")
	coachEmail := envOrDefault("BEARD_COACH_EMAIL", "train@beardbasketball.com")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, coachEmail)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, coachEmail)
		if os.Getenv("BEARD_ENV") == "production" {
			log.Println("WARNING: BEARD_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set BEARD_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("BEARD_ADDR", ":8080")
	log.Printf("B.E.A.R.D. Basketball %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("BEARD_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
