package audit

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/audit"
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

const auditColumns = `id, actor_id, action, target_type, target_id, org_id, detail, read_at, created_at`

// GetByID retrieves an Entry by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+auditColumns+` FROM audit_entry WHERE id = ?`, id)
	return scanEntry(row.Scan)
}

// List retrieves audit entries matching the filter, newest first.
// PRE: none
// POST: Returns matching entries
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Entry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_entry WHERE 1=1`
	var args []any
	if filter.OrgID != "" {
		query += ` AND org_id = ?`
		args = append(args, filter.OrgID)
	}
	if filter.ActorID != "" {
		query += ` AND actor_id = ?`
		args = append(args, filter.ActorID)
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountUnread returns the number of unreviewed entries. The count feeds the
// Audits badge.
// PRE: none
// POST: Returns the unread count
func (s *SQLiteStore) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_entry WHERE read_at IS NULL`).Scan(&count)
	return count, err
}

// Save persists an Entry (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_entry (id, actor_id, action, target_type, target_id, org_id, detail, read_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET read_at=excluded.read_at`,
		e.ID, e.ActorID, e.Action, nullStr(e.TargetType), nullStr(e.TargetID),
		nullStr(e.OrgID), nullStr(e.Detail), nullTime(e.ReadAt),
		e.CreatedAt.Format(timeLayout))
	return err
}

// MarkAllRead marks every unreviewed entry as read.
// PRE: none
// POST: No entry has a NULL read_at
func (s *SQLiteStore) MarkAllRead(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE audit_entry SET read_at = ? WHERE read_at IS NULL`,
		time.Now().UTC().Format(timeLayout))
	return err
}

func scanEntry(scan func(dest ...any) error) (domain.Entry, error) {
	var e domain.Entry
	var targetType, targetID, orgID, detail, readAt sql.NullString
	var createdAt string
	err := scan(&e.ID, &e.ActorID, &e.Action, &targetType, &targetID, &orgID, &detail, &readAt, &createdAt)
	if err != nil {
		return domain.Entry{}, err
	}
	e.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if targetType.Valid {
		e.TargetType = targetType.String
	}
	if targetID.Valid {
		e.TargetID = targetID.String
	}
	if orgID.Valid {
		e.OrgID = orgID.String
	}
	if detail.Valid {
		e.Detail = detail.String
	}
	if readAt.Valid {
		e.ReadAt, _ = time.Parse(timeLayout, readAt.String)
	}
	return e, nil
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
