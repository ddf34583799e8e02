package storage

import (
	"database/sql"
	"fmt"
)

// schemaVersion is bumped whenever the schema below changes shape.
const schemaVersion = 1

// LatestSchemaVersion returns the schema version this build expects.
func LatestSchemaVersion() int {
	return schemaVersion
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS organization (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		domain TEXT,
		org_type TEXT NOT NULL,
		theme_color TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS project (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		title TEXT NOT NULL,
		domain TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL,
		updated_at TEXT,
		FOREIGN KEY (org_id) REFERENCES organization(id)
	);

	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		team_role TEXT NOT NULL DEFAULT '',
		access_level TEXT NOT NULL DEFAULT 'project',
		org_id TEXT,
		is_super_admin INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT,
		FOREIGN KEY (org_id) REFERENCES organization(id)
	);

	CREATE TABLE IF NOT EXISTS feature_flag (
		tenant_type TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		key TEXT NOT NULL,
		enabled INTEGER NOT NULL,
		PRIMARY KEY (tenant_type, tenant_id, key)
	);

	CREATE TABLE IF NOT EXISTS message (
		id TEXT PRIMARY KEY,
		org_id TEXT,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		subject TEXT,
		content TEXT NOT NULL,
		read_at TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (receiver_id) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS audit_entry (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_type TEXT,
		target_id TEXT,
		org_id TEXT,
		detail TEXT,
		read_at TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS invoice (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		project_id TEXT,
		number TEXT NOT NULL UNIQUE,
		amount_cents INTEGER NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		status TEXT NOT NULL DEFAULT 'draft',
		due_date TEXT,
		issued_at TEXT,
		paid_at TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (org_id) REFERENCES organization(id)
	);

	CREATE TABLE IF NOT EXISTS lead (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		company TEXT,
		source TEXT,
		status TEXT NOT NULL DEFAULT 'new',
		assigned_to TEXT,
		notes TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS proposal (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		amount_cents INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft',
		created_by TEXT,
		sent_by TEXT,
		sent_at TEXT,
		responded_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT,
		FOREIGN KEY (org_id) REFERENCES organization(id)
	);

	CREATE TABLE IF NOT EXISTS blog_post (
		id TEXT PRIMARY KEY,
		tenant_type TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		body TEXT NOT NULL,
		author_id TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		published_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT,
		UNIQUE (tenant_type, tenant_id, slug)
	);

	CREATE TABLE IF NOT EXISTS sync_event_type (
		id TEXT PRIMARY KEY,
		tenant_type TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		buffer_minutes INTEGER NOT NULL DEFAULT 0,
		routing TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT,
		UNIQUE (tenant_type, tenant_id, slug)
	);

	CREATE TABLE IF NOT EXISTS sync_host (
		event_type_id TEXT NOT NULL,
		account_id TEXT NOT NULL,
		weight INTEGER NOT NULL DEFAULT 0,
		priority INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (event_type_id, account_id),
		FOREIGN KEY (event_type_id) REFERENCES sync_event_type(id) ON DELETE CASCADE
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// MigrateDB brings the database up to the latest schema version. The schema
// statements are idempotent, so migration is create-if-missing plus a
// user_version stamp.
// PRE: db is a valid database connection
// POST: Schema exists and user_version equals LatestSchemaVersion
func MigrateDB(db *sql.DB) error {
	var current int
	if err := db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", current, schemaVersion)
	}

	if err := InitDB(db); err != nil {
		return err
	}

	if current < schemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
	}
	return nil
}
