package invoice

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/invoice"
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

const invoiceColumns = `id, org_id, project_id, number, amount_cents, currency, status, due_date, issued_at, paid_at, created_at`

// GetByID retrieves an Invoice by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoice WHERE id = ?`, id)
	return scanInvoice(row.Scan)
}

// ListByOrgID retrieves an organization's invoices, newest first.
// PRE: orgID is non-empty
// POST: Returns invoices for the given organization
func (s *SQLiteStore) ListByOrgID(ctx context.Context, orgID string) ([]domain.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoice WHERE org_id = ? ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// List retrieves all invoices, newest first.
// PRE: none
// POST: Returns all invoices
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoice ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// CountUnpaid returns the number of sent-but-unpaid invoices across all
// organizations. The count feeds the admin Billing badge.
// PRE: none
// POST: Returns the unpaid count
func (s *SQLiteStore) CountUnpaid(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invoice WHERE status = ?`, domain.StatusSent).Scan(&count)
	return count, err
}

// CountUnpaidByOrgID returns the unpaid count for one organization.
// PRE: orgID is non-empty
// POST: Returns the unpaid count
func (s *SQLiteStore) CountUnpaidByOrgID(ctx context.Context, orgID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invoice WHERE org_id = ? AND status = ?`, orgID, domain.StatusSent).Scan(&count)
	return count, err
}

// Save persists an Invoice (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, i domain.Invoice) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invoice (id, org_id, project_id, number, amount_cents, currency, status, due_date, issued_at, paid_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   amount_cents=excluded.amount_cents, currency=excluded.currency,
		   status=excluded.status, due_date=excluded.due_date,
		   issued_at=excluded.issued_at, paid_at=excluded.paid_at`,
		i.ID, i.OrgID, nullStr(i.ProjectID), i.Number, i.AmountCents, i.Currency,
		i.Status, nullTime(i.DueDate), nullTime(i.IssuedAt), nullTime(i.PaidAt),
		i.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes an Invoice.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM invoice WHERE id = ?`, id)
	return err
}

func scanInvoice(scan func(dest ...any) error) (domain.Invoice, error) {
	var i domain.Invoice
	var projectID, dueDate, issuedAt, paidAt sql.NullString
	var createdAt string
	err := scan(&i.ID, &i.OrgID, &projectID, &i.Number, &i.AmountCents, &i.Currency,
		&i.Status, &dueDate, &issuedAt, &paidAt, &createdAt)
	if err != nil {
		return domain.Invoice{}, err
	}
	i.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if projectID.Valid {
		i.ProjectID = projectID.String
	}
	if dueDate.Valid {
		i.DueDate, _ = time.Parse(timeLayout, dueDate.String)
	}
	if issuedAt.Valid {
		i.IssuedAt, _ = time.Parse(timeLayout, issuedAt.String)
	}
	if paidAt.Valid {
		i.PaidAt, _ = time.Parse(timeLayout, paidAt.String)
	}
	return i, nil
}

func scanInvoices(rows *sql.Rows) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
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
