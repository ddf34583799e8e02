package project

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/project"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const projectColumns = `id, org_id, title, domain, status, created_at, updated_at`

// GetByID retrieves a Project by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM project WHERE id = ?`, id)
	return scanProject(row.Scan)
}

// ListByOrgID retrieves the projects of an organization, ordered by title.
// PRE: orgID is non-empty
// POST: Returns projects for the given organization
func (s *SQLiteStore) ListByOrgID(ctx context.Context, orgID string) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM project WHERE org_id = ? ORDER BY title`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

// List retrieves all projects, ordered by title.
// PRE: none
// POST: Returns all projects
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM project ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

// Save persists a Project (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, p domain.Project) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO project (id, org_id, title, domain, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   org_id=excluded.org_id, title=excluded.title, domain=excluded.domain,
		   status=excluded.status, updated_at=excluded.updated_at`,
		p.ID, p.OrgID, p.Title, nullStr(p.Domain), p.Status,
		p.CreatedAt.Format(timeLayout), nullTime(p.UpdatedAt))
	return err
}

// Delete removes a Project.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM project WHERE id = ?`, id)
	return err
}

func scanProject(scan func(dest ...any) error) (domain.Project, error) {
	var p domain.Project
	var dom, updatedAt sql.NullString
	var createdAt string
	err := scan(&p.ID, &p.OrgID, &p.Title, &dom, &p.Status, &createdAt, &updatedAt)
	if err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if dom.Valid {
		p.Domain = dom.String
	}
	if updatedAt.Valid {
		p.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return p, nil
}

func scanProjects(rows *sql.Rows) ([]domain.Project, error) {
	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
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
