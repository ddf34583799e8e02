package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/lead"

	"github.com/google/uuid"
)

// LeadStore defines the store interface needed by the lead orchestrators.
type LeadStore interface {
	GetByID(ctx context.Context, id string) (lead.Lead, error)
	Save(ctx context.Context, l lead.Lead) error
}

// LeadDeps holds dependencies for the lead orchestrators.
type LeadDeps struct {
	LeadStore LeadStore
}

// IntakeLeadInput carries input for ExecuteIntakeLead.
type IntakeLeadInput struct {
	Name    string
	Email   string
	Company string
	Source  string
	Notes   string
}

// ExecuteIntakeLead records a new prospect from an intake form or manual entry.
// PRE: Valid name
// POST: Lead persisted in new status
func ExecuteIntakeLead(ctx context.Context, input IntakeLeadInput, deps LeadDeps) (string, error) {
	l := lead.Lead{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Source:    input.Source,
		Status:    lead.StatusNew,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}
	if l.Source == "" {
		l.Source = "manual"
	}
	if err := l.Validate(); err != nil {
		return "", err
	}
	if err := deps.LeadStore.Save(ctx, l); err != nil {
		return "", err
	}

	slog.Info("lead_event", "event", "lead_created", "lead_id", l.ID, "source", l.Source)
	return l.ID, nil
}

// ExecuteAssignLead hands a lead to a sales rep.
// PRE: Lead exists and is not closed
// POST: AssignedTo set
func ExecuteAssignLead(ctx context.Context, leadID, accountID string, deps LeadDeps) error {
	l, err := deps.LeadStore.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if err := l.Assign(accountID); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()
	if err := deps.LeadStore.Save(ctx, l); err != nil {
		return err
	}

	slog.Info("lead_event", "event", "lead_assigned", "lead_id", l.ID, "account_id", accountID)
	return nil
}

// ExecuteAdvanceLead moves a lead along the pipeline.
// PRE: Lead exists and is not closed; status is valid
// POST: Status updated
func ExecuteAdvanceLead(ctx context.Context, leadID, status string, deps LeadDeps) error {
	l, err := deps.LeadStore.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if err := l.Advance(status); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()
	if err := deps.LeadStore.Save(ctx, l); err != nil {
		return err
	}

	slog.Info("lead_event", "event", "lead_advanced", "lead_id", l.ID, "status", status)
	return nil
}
