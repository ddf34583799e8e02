package blog

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/blog"
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

const postColumns = `id, tenant_type, tenant_id, title, slug, body, author_id, status, published_at, created_at, updated_at`

// GetByID retrieves a Post by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_post WHERE id = ?`, id)
	return scanPost(row.Scan)
}

// GetBySlug retrieves a Post by its tenant-scoped slug.
// PRE: tenantType, tenantID and slug are non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetBySlug(ctx context.Context, tenantType, tenantID, slug string) (domain.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_post WHERE tenant_type = ? AND tenant_id = ? AND slug = ?`,
		tenantType, tenantID, slug)
	return scanPost(row.Scan)
}

// ListByTenant retrieves a tenant's posts, newest first.
// PRE: tenantType and tenantID are non-empty
// POST: Returns posts for the given tenant
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantType, tenantID string) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM blog_post WHERE tenant_type = ? AND tenant_id = ? ORDER BY created_at DESC`,
		tenantType, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save persists a Post (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, p domain.Post) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blog_post (id, tenant_type, tenant_id, title, slug, body, author_id, status, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, slug=excluded.slug, body=excluded.body,
		   status=excluded.status, published_at=excluded.published_at,
		   updated_at=excluded.updated_at`,
		p.ID, p.TenantType, p.TenantID, p.Title, p.Slug, p.Body,
		nullStr(p.AuthorID), p.Status, nullTime(p.PublishedAt),
		p.CreatedAt.Format(timeLayout), nullTime(p.UpdatedAt))
	return err
}

// Delete removes a Post.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blog_post WHERE id = ?`, id)
	return err
}

func scanPost(scan func(dest ...any) error) (domain.Post, error) {
	var p domain.Post
	var authorID, publishedAt, updatedAt sql.NullString
	var createdAt string
	err := scan(&p.ID, &p.TenantType, &p.TenantID, &p.Title, &p.Slug, &p.Body,
		&authorID, &p.Status, &publishedAt, &createdAt, &updatedAt)
	if err != nil {
		return domain.Post{}, err
	}
	p.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if authorID.Valid {
		p.AuthorID = authorID.String
	}
	if publishedAt.Valid {
		p.PublishedAt, _ = time.Parse(timeLayout, publishedAt.String)
	}
	if updatedAt.Valid {
		p.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return p, nil
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
