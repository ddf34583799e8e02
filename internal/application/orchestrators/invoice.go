package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/audit"
	"portal/internal/domain/invoice"

	"github.com/google/uuid"
)

// InvoiceStore defines the store interface needed by the invoice orchestrators.
type InvoiceStore interface {
	GetByID(ctx context.Context, id string) (invoice.Invoice, error)
	Save(ctx context.Context, i invoice.Invoice) error
}

// InvoiceDeps holds dependencies for the invoice orchestrators.
type InvoiceDeps struct {
	InvoiceStore InvoiceStore
	AuditStore   AuditRecorder
}

// CreateInvoiceInput carries input for ExecuteCreateInvoice.
type CreateInvoiceInput struct {
	OrgID       string
	ProjectID   string
	Number      string
	AmountCents int64
	Currency    string
	DueDate     time.Time
}

// ExecuteCreateInvoice drafts a new invoice for a client organization.
// PRE: Valid org, number and positive amount
// POST: Invoice persisted in draft status
func ExecuteCreateInvoice(ctx context.Context, input CreateInvoiceInput, deps InvoiceDeps) (string, error) {
	inv := invoice.Invoice{
		ID:          uuid.New().String(),
		OrgID:       input.OrgID,
		ProjectID:   input.ProjectID,
		Number:      input.Number,
		AmountCents: input.AmountCents,
		Currency:    input.Currency,
		Status:      invoice.StatusDraft,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now(),
	}
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
	if err := inv.Validate(); err != nil {
		return "", err
	}
	if err := deps.InvoiceStore.Save(ctx, inv); err != nil {
		return "", err
	}

	slog.Info("invoice_event", "event", "invoice_created", "invoice_id", inv.ID, "org_id", inv.OrgID)
	return inv.ID, nil
}

// ExecuteIssueInvoice sends a draft invoice to its organization.
// PRE: Invoice is in draft status
// POST: Status is sent; issue recorded in the audit trail
func ExecuteIssueInvoice(ctx context.Context, invoiceID, actorID string, deps InvoiceDeps) error {
	inv, err := deps.InvoiceStore.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := inv.Issue(time.Now()); err != nil {
		return err
	}
	if err := deps.InvoiceStore.Save(ctx, inv); err != nil {
		return err
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionInvoiceIssued,
		TargetType: "invoice",
		TargetID:   inv.ID,
		OrgID:      inv.OrgID,
		Detail:     inv.Number,
	})

	slog.Info("invoice_event", "event", "invoice_issued", "invoice_id", inv.ID, "org_id", inv.OrgID)
	return nil
}

// ExecuteMarkInvoicePaid records payment of a sent invoice.
// PRE: Invoice is in sent status
// POST: Status is paid
func ExecuteMarkInvoicePaid(ctx context.Context, invoiceID string, deps InvoiceDeps) error {
	inv, err := deps.InvoiceStore.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := inv.MarkPaid(time.Now()); err != nil {
		return err
	}
	if err := deps.InvoiceStore.Save(ctx, inv); err != nil {
		return err
	}

	slog.Info("invoice_event", "event", "invoice_paid", "invoice_id", inv.ID)
	return nil
}

// ExecuteVoidInvoice cancels an unpaid invoice.
// PRE: Invoice is not paid
// POST: Status is void
func ExecuteVoidInvoice(ctx context.Context, invoiceID string, deps InvoiceDeps) error {
	inv, err := deps.InvoiceStore.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := inv.Void(); err != nil {
		return err
	}
	if err := deps.InvoiceStore.Save(ctx, inv); err != nil {
		return err
	}

	slog.Info("invoice_event", "event", "invoice_voided", "invoice_id", inv.ID)
	return nil
}
