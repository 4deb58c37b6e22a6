package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"beardball/internal/adapters/email"
	"beardball/internal/adapters/http/middleware"
	"beardball/internal/adapters/http/perf"
	accountStore "beardball/internal/adapters/storage/account"
	bookingStore "beardball/internal/adapters/storage/booking"
	drillStore "beardball/internal/adapters/storage/drill"
	photoStore "beardball/internal/adapters/storage/photo"
	pricingStore "beardball/internal/adapters/storage/pricing"
	testimonialStore "beardball/internal/adapters/storage/testimonial"
	"beardball/internal/application/orchestrators"
)

// Stores holds all storage dependencies plus the content service, which owns
// the editable document and serializes its writes.
type Stores struct {
	AccountStore     accountStore.Store
	BookingStore     bookingStore.Store
	DrillStore       drillStore.Store
	PackageStore     pricingStore.Store
	TestimonialStore testimonialStore.Store
	PhotoStore       photoStore.Store
	ContentService   *orchestrators.ContentService
}

// loadCSRFKey reads the CSRF secret from BEARD_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("BEARD_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("BEARD_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("BEARD_ENV") == "production" {
		log.Fatal("BEARD_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set BEARD_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global edit-mode controller registry (set by NewMux)
var editModes *editModeRegistry

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var coachEmailAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, coachEmail string) {
	emailSender = sender
	emailFromAddress = from
	coachEmailAddress = coachEmail
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	editModes = newEditModeRegistry()
	middleware.SecureCookies = os.Getenv("BEARD_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
