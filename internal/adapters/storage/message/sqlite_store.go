package message

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/message"
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

const messageColumns = `id, org_id, sender_id, receiver_id, subject, content, read_at, created_at`

// GetByID retrieves a Message by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Message, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM message WHERE id = ?`, id)
	return scanMessage(row.Scan)
}

// ListByReceiverID retrieves an account's inbox, newest first.
// PRE: receiverID is non-empty
// POST: Returns messages for the given receiver
func (s *SQLiteStore) ListByReceiverID(ctx context.Context, receiverID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM message WHERE receiver_id = ? ORDER BY created_at DESC`, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListByOrgID retrieves an organization's message thread, newest first.
// PRE: orgID is non-empty
// POST: Returns messages scoped to the given organization
func (s *SQLiteStore) ListByOrgID(ctx context.Context, orgID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM message WHERE org_id = ? ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// CountUnread returns the unread message count for a receiver. The count feeds
// the Messages badge.
// PRE: receiverID is non-empty
// POST: Returns the unread count
func (s *SQLiteStore) CountUnread(ctx context.Context, receiverID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM message WHERE receiver_id = ? AND read_at IS NULL`, receiverID).Scan(&count)
	return count, err
}

// Save persists a Message (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, m domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO message (id, org_id, sender_id, receiver_id, subject, content, read_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   subject=excluded.subject, content=excluded.content, read_at=excluded.read_at`,
		m.ID, nullStr(m.OrgID), m.SenderID, m.ReceiverID, nullStr(m.Subject),
		m.Content, nullTime(m.ReadAt), m.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes a Message.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM message WHERE id = ?`, id)
	return err
}

func scanMessage(scan func(dest ...any) error) (domain.Message, error) {
	var m domain.Message
	var orgID, subject, readAt sql.NullString
	var createdAt string
	err := scan(&m.ID, &orgID, &m.SenderID, &m.ReceiverID, &subject, &m.Content, &readAt, &createdAt)
	if err != nil {
		return domain.Message{}, err
	}
	m.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if orgID.Valid {
		m.OrgID = orgID.String
	}
	if subject.Valid {
		m.Subject = subject.String
	}
	if readAt.Valid {
		m.ReadAt, _ = time.Parse(timeLayout, readAt.String)
	}
	return m, nil
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var out []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
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
