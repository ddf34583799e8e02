package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portal/internal/adapters/email"
	"portal/internal/domain/audit"
	"portal/internal/domain/organization"
	"portal/internal/domain/proposal"

	"github.com/google/uuid"
)

// ProposalStore defines the store interface needed by the proposal
// orchestrators.
type ProposalStore interface {
	GetByID(ctx context.Context, id string) (proposal.Proposal, error)
	Save(ctx context.Context, p proposal.Proposal) error
}

// OrgStoreForProposal defines the organization lookup needed when sending.
type OrgStoreForProposal interface {
	GetByID(ctx context.Context, id string) (organization.Organization, error)
}

// ProposalDeps holds dependencies for the proposal orchestrators.
type ProposalDeps struct {
	ProposalStore ProposalStore
	OrgStore      OrgStoreForProposal
	AuditStore    AuditRecorder
	EmailSender   email.Sender // optional, nil disables notifications
	ContactEmail  func(ctx context.Context, orgID string) (string, error)
}

// CreateProposalInput carries input for ExecuteCreateProposal.
type CreateProposalInput struct {
	OrgID       string
	Title       string
	Content     string
	AmountCents int64
	CreatedBy   string
}

// ExecuteCreateProposal drafts a new proposal for a client organization.
// PRE: Valid org, title and content
// POST: Proposal persisted in draft status
func ExecuteCreateProposal(ctx context.Context, input CreateProposalInput, deps ProposalDeps) (string, error) {
	p := proposal.Proposal{
		ID:          uuid.New().String(),
		OrgID:       input.OrgID,
		Title:       input.Title,
		Content:     input.Content,
		AmountCents: input.AmountCents,
		Status:      proposal.StatusDraft,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now(),
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := deps.ProposalStore.Save(ctx, p); err != nil {
		return "", err
	}

	slog.Info("proposal_event", "event", "proposal_created", "proposal_id", p.ID, "org_id", p.OrgID)
	return p.ID, nil
}

// SendProposalInput carries input for ExecuteSendProposal.
type SendProposalInput struct {
	ProposalID string
	SenderID   string
}

// ExecuteSendProposal sends a draft proposal to its client organization and
// notifies the org contact by email when a sender is configured.
// PRE: Proposal is in draft status
// POST: Status is sent; send recorded in the audit trail
func ExecuteSendProposal(ctx context.Context, input SendProposalInput, deps ProposalDeps) error {
	p, err := deps.ProposalStore.GetByID(ctx, input.ProposalID)
	if err != nil {
		return err
	}
	if err := p.Send(input.SenderID, time.Now()); err != nil {
		return err
	}
	if err := deps.ProposalStore.Save(ctx, p); err != nil {
		return err
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    input.SenderID,
		Action:     audit.ActionProposalSent,
		TargetType: "proposal",
		TargetID:   p.ID,
		OrgID:      p.OrgID,
		Detail:     p.Title,
	})

	if deps.EmailSender != nil && deps.ContactEmail != nil {
		if to, err := deps.ContactEmail(ctx, p.OrgID); err == nil && to != "" {
			org, _ := deps.OrgStore.GetByID(ctx, p.OrgID)
			req := email.SendRequest{
				To:      []string{to},
				Subject: fmt.Sprintf("New proposal: %s", p.Title),
				HTML:    fmt.Sprintf("<p>A new proposal is waiting for %s in your portal.</p>", org.Name),
			}
			if _, err := deps.EmailSender.Send(ctx, req); err != nil {
				slog.Error("proposal_event", "event", "notify_failed", "proposal_id", p.ID, "error", err)
			}
		}
	}

	slog.Info("proposal_event", "event", "proposal_sent", "proposal_id", p.ID, "org_id", p.OrgID)
	return nil
}

// RespondProposalInput carries the client's response.
type RespondProposalInput struct {
	ProposalID string
	Accept     bool
}

// ExecuteRespondProposal records the client organization's response.
// PRE: Proposal is in sent status
// POST: Status is accepted or declined
func ExecuteRespondProposal(ctx context.Context, input RespondProposalInput, deps ProposalDeps) error {
	p, err := deps.ProposalStore.GetByID(ctx, input.ProposalID)
	if err != nil {
		return err
	}
	now := time.Now()
	if input.Accept {
		err = p.Accept(now)
	} else {
		err = p.Decline(now)
	}
	if err != nil {
		return err
	}
	if err := deps.ProposalStore.Save(ctx, p); err != nil {
		return err
	}

	slog.Info("proposal_event", "event", "proposal_responded", "proposal_id", p.ID, "status", p.Status)
	return nil
}
