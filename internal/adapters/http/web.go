package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"portal/internal/adapters/email"
	"portal/internal/adapters/http/middleware"
	accountStore "portal/internal/adapters/storage/account"
	auditStore "portal/internal/adapters/storage/audit"
	blogStore "portal/internal/adapters/storage/blog"
	bookingStore "portal/internal/adapters/storage/booking"
	featureFlagStore "portal/internal/adapters/storage/featureflag"
	invoiceStore "portal/internal/adapters/storage/invoice"
	leadStore "portal/internal/adapters/storage/lead"
	messageStore "portal/internal/adapters/storage/message"
	orgStore "portal/internal/adapters/storage/organization"
	projectStore "portal/internal/adapters/storage/project"
	proposalStore "portal/internal/adapters/storage/proposal"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore      accountStore.Store
	OrganizationStore orgStore.Store
	ProjectStore      projectStore.Store
	FeatureFlagStore  featureFlagStore.Store
	MessageStore      messageStore.Store
	AuditStore        auditStore.Store
	InvoiceStore      invoiceStore.Store
	LeadStore         leadStore.Store
	ProposalStore     proposalStore.Store
	BlogStore         blogStore.Store
	BookingStore      bookingStore.Store
}

// loadCSRFKey reads the CSRF secret from PORTAL_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("PORTAL_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PORTAL_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PORTAL_ENV") == "production" {
		log.Fatal("PORTAL_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set PORTAL_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// AgencyOrgID is the operator's own organization, seeded at startup. Staff
// accounts with no home org fall back to its feature flags.
var AgencyOrgID string

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("PORTAL_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.RequestLog,
	)
}
