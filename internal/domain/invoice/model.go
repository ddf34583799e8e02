package invoice

import (
	"errors"
	"time"
)

// Invoice status constants
const (
	StatusDraft = "draft"
	StatusSent  = "sent"
	StatusPaid  = "paid"
	StatusVoid  = "void"
)

// Domain errors
var (
	ErrEmptyOrgID     = errors.New("invoice must belong to an organization")
	ErrEmptyNumber    = errors.New("invoice number is required")
	ErrInvalidAmount  = errors.New("invoice amount must be positive")
	ErrNotDraft       = errors.New("only draft invoices can be sent")
	ErrNotOutstanding = errors.New("only sent invoices can be paid")
	ErrAlreadyPaid    = errors.New("paid invoices cannot be voided")
)

// Invoice bills a client organization, optionally tied to one of its
// projects. Amounts are integer cents.
type Invoice struct {
	ID          string
	OrgID       string
	ProjectID   string
	Number      string
	AmountCents int64
	Currency    string
	Status      string
	DueDate     time.Time
	IssuedAt    time.Time
	PaidAt      time.Time
	CreatedAt   time.Time
}

// Validate checks if the Invoice has valid data.
// PRE: Invoice struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Invoice) Validate() error {
	if i.OrgID == "" {
		return ErrEmptyOrgID
	}
	if i.Number == "" {
		return ErrEmptyNumber
	}
	if i.AmountCents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Issue transitions a draft invoice to sent.
// PRE: Invoice is in draft status
// POST: Status is sent, IssuedAt recorded
func (i *Invoice) Issue(now time.Time) error {
	if i.Status != StatusDraft {
		return ErrNotDraft
	}
	i.Status = StatusSent
	i.IssuedAt = now
	return nil
}

// MarkPaid transitions a sent invoice to paid.
// PRE: Invoice is in sent status
// POST: Status is paid, PaidAt recorded
func (i *Invoice) MarkPaid(now time.Time) error {
	if i.Status != StatusSent {
		return ErrNotOutstanding
	}
	i.Status = StatusPaid
	i.PaidAt = now
	return nil
}

// Void cancels an unpaid invoice.
// PRE: Invoice is not paid
// POST: Status is void
func (i *Invoice) Void() error {
	if i.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	i.Status = StatusVoid
	return nil
}

// IsUnpaid returns true for invoices awaiting payment. Unpaid invoices feed
// the Billing badge count.
// INVARIANT: Invoice fields are not mutated
func (i *Invoice) IsUnpaid() bool {
	return i.Status == StatusSent
}

// IsOverdue returns true for unpaid invoices past their due date.
// INVARIANT: Invoice fields are not mutated
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.IsUnpaid() && !i.DueDate.IsZero() && now.After(i.DueDate)
}
