package proposal

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/proposal"
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

const proposalColumns = `id, org_id, title, content, amount_cents, status, created_by, sent_by, sent_at, responded_at, created_at, updated_at`

// GetByID retrieves a Proposal by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Proposal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+proposalColumns+` FROM proposal WHERE id = ?`, id)
	return scanProposal(row.Scan)
}

// ListByOrgID retrieves an organization's proposals, newest first.
// PRE: orgID is non-empty
// POST: Returns proposals for the given organization
func (s *SQLiteStore) ListByOrgID(ctx context.Context, orgID string) ([]domain.Proposal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+proposalColumns+` FROM proposal WHERE org_id = ? ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProposals(rows)
}

// List retrieves all proposals, newest first.
// PRE: none
// POST: Returns all proposals
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Proposal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+proposalColumns+` FROM proposal ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProposals(rows)
}

// Save persists a Proposal (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, p domain.Proposal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO proposal (id, org_id, title, content, amount_cents, status, created_by, sent_by, sent_at, responded_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, content=excluded.content,
		   amount_cents=excluded.amount_cents, status=excluded.status,
		   sent_by=excluded.sent_by, sent_at=excluded.sent_at,
		   responded_at=excluded.responded_at, updated_at=excluded.updated_at`,
		p.ID, p.OrgID, p.Title, p.Content, p.AmountCents, p.Status,
		nullStr(p.CreatedBy), nullStr(p.SentBy), nullTime(p.SentAt),
		nullTime(p.RespondedAt), p.CreatedAt.Format(timeLayout), nullTime(p.UpdatedAt))
	return err
}

// Delete removes a Proposal.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM proposal WHERE id = ?`, id)
	return err
}

func scanProposal(scan func(dest ...any) error) (domain.Proposal, error) {
	var p domain.Proposal
	var createdBy, sentBy, sentAt, respondedAt, updatedAt sql.NullString
	var createdAt string
	err := scan(&p.ID, &p.OrgID, &p.Title, &p.Content, &p.AmountCents, &p.Status,
		&createdBy, &sentBy, &sentAt, &respondedAt, &createdAt, &updatedAt)
	if err != nil {
		return domain.Proposal{}, err
	}
	p.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if createdBy.Valid {
		p.CreatedBy = createdBy.String
	}
	if sentBy.Valid {
		p.SentBy = sentBy.String
	}
	if sentAt.Valid {
		p.SentAt, _ = time.Parse(timeLayout, sentAt.String)
	}
	if respondedAt.Valid {
		p.RespondedAt, _ = time.Parse(timeLayout, respondedAt.String)
	}
	if updatedAt.Valid {
		p.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return p, nil
}

func scanProposals(rows *sql.Rows) ([]domain.Proposal, error) {
	var out []domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows.Scan)
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
