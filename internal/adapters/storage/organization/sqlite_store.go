package organization

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/organization"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite. Feature flags live in their own
// table and are loaded by the featureflag store, not here.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const orgColumns = `id, name, slug, domain, org_type, theme_color, status, created_at, updated_at`

// GetByID retrieves an Organization by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+orgColumns+` FROM organization WHERE id = ?`, id)
	return scanOrg(row.Scan)
}

// GetBySlug retrieves an Organization by its slug.
// PRE: slug is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetBySlug(ctx context.Context, slug string) (domain.Organization, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+orgColumns+` FROM organization WHERE slug = ?`, slug)
	return scanOrg(row.Scan)
}

// List retrieves organizations matching the filter, ordered by name.
// PRE: none
// POST: Returns matching organizations
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organization WHERE 1=1`
	var args []any
	if filter.OrgType != "" {
		query += ` AND org_type = ?`
		args = append(args, filter.OrgType)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Organization
	for rows.Next() {
		o, err := scanOrg(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Save persists an Organization (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, o domain.Organization) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organization (id, name, slug, domain, org_type, theme_color, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, slug=excluded.slug, domain=excluded.domain,
		   org_type=excluded.org_type, theme_color=excluded.theme_color,
		   status=excluded.status, updated_at=excluded.updated_at`,
		o.ID, o.Name, o.Slug, nullStr(o.Domain), o.OrgType, o.ThemeColor, o.Status,
		o.CreatedAt.Format(timeLayout), nullTime(o.UpdatedAt))
	return err
}

// Delete removes an Organization.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM organization WHERE id = ?`, id)
	return err
}

func scanOrg(scan func(dest ...any) error) (domain.Organization, error) {
	var o domain.Organization
	var dom, updatedAt sql.NullString
	var createdAt string
	err := scan(&o.ID, &o.Name, &o.Slug, &dom, &o.OrgType, &o.ThemeColor, &o.Status, &createdAt, &updatedAt)
	if err != nil {
		return domain.Organization{}, err
	}
	o.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if dom.Valid {
		o.Domain = dom.String
	}
	if updatedAt.Valid {
		o.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return o, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
