package featureflag

import (
	"context"
	"database/sql"

	"portal/internal/domain/feature"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new feature-flag store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetForTenant retrieves the explicitly set flags for a tenant. Keys without
// a row are absent from the returned map (unset).
// PRE: tenantType and tenantID are non-empty
// POST: Returns the tenant's flag bag
// INVARIANT: Store state is not mutated
func (s *SQLiteStore) GetForTenant(ctx context.Context, tenantType, tenantID string) (feature.Flags, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, enabled
		FROM feature_flag
		WHERE tenant_type = ? AND tenant_id = ?
	`, tenantType, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags := feature.Flags{}
	for rows.Next() {
		var key string
		var enabled int
		if err := rows.Scan(&key, &enabled); err != nil {
			return nil, err
		}
		flags[key] = enabled != 0
	}
	return flags, rows.Err()
}

// Set upserts one flag for a tenant.
// PRE: tenantType, tenantID and key are non-empty
// POST: Flag row exists with the given value
func (s *SQLiteStore) Set(ctx context.Context, tenantType, tenantID, key string, enabled bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feature_flag (tenant_type, tenant_id, key, enabled)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(tenant_type, tenant_id, key) DO UPDATE SET enabled=excluded.enabled
	`, tenantType, tenantID, key, boolToInt(enabled))
	return err
}

// Clear removes a flag, returning the key to its unset default.
// PRE: tenantType, tenantID and key are non-empty
// POST: No row exists for the key
func (s *SQLiteStore) Clear(ctx context.Context, tenantType, tenantID, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM feature_flag
		WHERE tenant_type = ? AND tenant_id = ? AND key = ?
	`, tenantType, tenantID, key)
	return err
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
