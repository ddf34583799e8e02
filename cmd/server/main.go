package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
	_ "modernc.org/sqlite"

	emailPkg "portal/internal/adapters/email"
	web "portal/internal/adapters/http"
	"portal/internal/adapters/storage"
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
	"portal/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// config holds server settings loaded from PORTAL_* environment variables.
type config struct {
	Env           string `env:"PORTAL_ENV" envDefault:"development"`
	Addr          string `env:"PORTAL_ADDR" envDefault:":8080"`
	DBPath        string `env:"PORTAL_DB_PATH" envDefault:"portal.db"`
	AgencyName    string `env:"PORTAL_AGENCY_NAME" envDefault:"Studio North"`
	AgencySlug    string `env:"PORTAL_AGENCY_SLUG" envDefault:"studio-north"`
	AdminEmail    string `env:"PORTAL_ADMIN_EMAIL" envDefault:"admin@studionorth.example"`
	AdminPassword string `env:"PORTAL_ADMIN_PASSWORD" envDefault:"change me before launch"`
	ResendKey     string `env:"PORTAL_RESEND_KEY"`
	EmailFrom     string `env:"PORTAL_RESEND_FROM" envDefault:"Studio North <noreply@studionorth.example>"`
	EmailReplyTo  string `env:"PORTAL_REPLY_TO" envDefault:"hello@studionorth.example"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	acctStore := accountStore.NewSQLiteStore(db)
	organizationStore := orgStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:      acctStore,
		OrganizationStore: organizationStore,
		ProjectStore:      projectStore.NewSQLiteStore(db),
		FeatureFlagStore:  featureFlagStore.NewSQLiteStore(db),
		MessageStore:      messageStore.NewSQLiteStore(db),
		AuditStore:        auditStore.NewSQLiteStore(db),
		InvoiceStore:      invoiceStore.NewSQLiteStore(db),
		LeadStore:         leadStore.NewSQLiteStore(db),
		ProposalStore:     proposalStore.NewSQLiteStore(db),
		BlogStore:         blogStore.NewSQLiteStore(db),
		BookingStore:      bookingStore.NewSQLiteStore(db),
	}

	ctx := context.Background()

	// Ensure the agency organization exists; it anchors staff feature flags
	agencyOrgID, err := orchestrators.ExecuteSeedAgency(ctx, organizationStore, cfg.AgencyName, cfg.AgencySlug)
	if err != nil {
		log.Fatalf("failed to seed agency organization: %v", err)
	}
	web.AgencyOrgID = agencyOrgID

	// Seed default super admin if no accounts exist
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(ctx, seedDeps, cfg.AdminEmail, cfg.AdminPassword, agencyOrgID); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed synthetic data for development only
	if cfg.Env != "production" {
		adminAcct, err := acctStore.GetByEmail(ctx, cfg.AdminEmail)
		if err != nil {
			log.Fatalf("failed to get admin account for seeding: %v", err)
		}
		synDeps := orchestrators.SyntheticSeedDeps{
			OrgStore:      organizationStore,
			ProjectStore:  stores.ProjectStore,
			AccountStore:  acctStore,
			FlagStore:     stores.FeatureFlagStore,
			MessageStore:  stores.MessageStore,
			InvoiceStore:  stores.InvoiceStore,
			LeadStore:     stores.LeadStore,
			ProposalStore: stores.ProposalStore,
			BookingStore:  stores.BookingStore,
		}
		if err := orchestrators.ExecuteSeedSynthetic(ctx, synDeps, adminAcct.ID); err != nil {
			log.Fatalf("failed to seed synthetic data: %v", err)
		}
		log.Println("Synthetic seed data loaded (dev mode)")
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReplyTo)
		if cfg.Env == "production" {
			log.Println("WARNING: PORTAL_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set PORTAL_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	log.Printf("Portal %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
