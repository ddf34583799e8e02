package lead

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/lead"
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

const leadColumns = `id, name, email, company, source, status, assigned_to, notes, created_at, updated_at`

// GetByID retrieves a Lead by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Lead, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM lead WHERE id = ?`, id)
	return scanLead(row.Scan)
}

// List retrieves leads matching the filter, newest first.
// PRE: none
// POST: Returns matching leads
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM lead WHERE 1=1`
	var args []any
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.AssignedTo != "" {
		query += ` AND assigned_to = ?`
		args = append(args, filter.AssignedTo)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// CountNew returns the number of unworked leads. The count feeds the Clients
// badge in the admin tools segment.
// PRE: none
// POST: Returns the new-lead count
func (s *SQLiteStore) CountNew(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lead WHERE status = ?`, domain.StatusNew).Scan(&count)
	return count, err
}

// Save persists a Lead (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, l domain.Lead) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lead (id, name, email, company, source, status, assigned_to, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, email=excluded.email, company=excluded.company,
		   source=excluded.source, status=excluded.status,
		   assigned_to=excluded.assigned_to, notes=excluded.notes,
		   updated_at=excluded.updated_at`,
		l.ID, l.Name, nullStr(l.Email), nullStr(l.Company), nullStr(l.Source),
		l.Status, nullStr(l.AssignedTo), nullStr(l.Notes),
		l.CreatedAt.Format(timeLayout), nullTime(l.UpdatedAt))
	return err
}

// Delete removes a Lead.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM lead WHERE id = ?`, id)
	return err
}

func scanLead(scan func(dest ...any) error) (domain.Lead, error) {
	var l domain.Lead
	var email, company, source, assignedTo, notes, updatedAt sql.NullString
	var createdAt string
	err := scan(&l.ID, &l.Name, &email, &company, &source, &l.Status, &assignedTo, &notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.Lead{}, err
	}
	l.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if email.Valid {
		l.Email = email.String
	}
	if company.Valid {
		l.Company = company.String
	}
	if source.Valid {
		l.Source = source.String
	}
	if assignedTo.Valid {
		l.AssignedTo = assignedTo.String
	}
	if notes.Valid {
		l.Notes = notes.String
	}
	if updatedAt.Valid {
		l.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return l, nil
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
