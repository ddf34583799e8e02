package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal/internal/adapters/email"
	"portal/internal/domain/audit"
	"portal/internal/domain/organization"
	"portal/internal/domain/proposal"
)

// mockProposalStore implements ProposalStore for testing.
type mockProposalStore struct {
	proposals map[string]proposal.Proposal
}

func (m *mockProposalStore) GetByID(_ context.Context, id string) (proposal.Proposal, error) {
	p, ok := m.proposals[id]
	if !ok {
		return proposal.Proposal{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockProposalStore) Save(_ context.Context, p proposal.Proposal) error {
	m.proposals[p.ID] = p
	return nil
}

// captureSender records sends instead of delivering.
type captureSender struct {
	sent []email.SendRequest
}

func (c *captureSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	c.sent = append(c.sent, req)
	return email.SendResult{MessageID: "capture-1", SentAt: time.Now()}, nil
}

func newProposalDeps() (ProposalDeps, *mockProposalStore, *mockAuditRecorder, *captureSender) {
	store := &mockProposalStore{proposals: map[string]proposal.Proposal{
		"prop-1": {
			ID:        "prop-1",
			OrgID:     "org-1",
			Title:     "Site Refresh",
			Content:   "## Scope",
			Status:    proposal.StatusDraft,
			CreatedBy: "admin-1",
			CreatedAt: time.Now(),
		},
	}}
	audits := &mockAuditRecorder{}
	sender := &captureSender{}
	deps := ProposalDeps{
		ProposalStore: store,
		OrgStore: &mockOrgStoreForSwitch{orgs: map[string]organization.Organization{
			"org-1": {ID: "org-1", Name: "Client Co", Slug: "client-co", OrgType: organization.TypeClient},
		}},
		AuditStore:  audits,
		EmailSender: sender,
		ContactEmail: func(_ context.Context, orgID string) (string, error) {
			return "owner@client.example", nil
		},
	}
	return deps, store, audits, sender
}

func TestExecuteCreateProposal_Valid(t *testing.T) {
	deps, store, _, _ := newProposalDeps()
	id, err := ExecuteCreateProposal(context.Background(), CreateProposalInput{
		OrgID:       "org-1",
		Title:       "New Work",
		Content:     "details",
		AmountCents: 100000,
		CreatedBy:   "admin-1",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := store.proposals[id]
	if !ok {
		t.Fatal("expected proposal to be persisted")
	}
	if p.Status != proposal.StatusDraft {
		t.Errorf("expected draft status, got %s", p.Status)
	}
}

func TestExecuteCreateProposal_MissingTitle(t *testing.T) {
	deps, _, _, _ := newProposalDeps()
	_, err := ExecuteCreateProposal(context.Background(), CreateProposalInput{
		OrgID:   "org-1",
		Content: "details",
	}, deps)
	if !errors.Is(err, proposal.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestExecuteSendProposal_NotifiesAndAudits(t *testing.T) {
	deps, store, audits, sender := newProposalDeps()
	if err := ExecuteSendProposal(context.Background(), SendProposalInput{
		ProposalID: "prop-1",
		SenderID:   "admin-1",
	}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := store.proposals["prop-1"]
	if p.Status != proposal.StatusSent {
		t.Errorf("expected sent status, got %s", p.Status)
	}
	if p.SentBy != "admin-1" || p.SentAt.IsZero() {
		t.Errorf("expected SentBy/SentAt recorded, got %s / %v", p.SentBy, p.SentAt)
	}
	if len(audits.entries) != 1 || audits.entries[0].Action != audit.ActionProposalSent {
		t.Errorf("expected one proposal_sent audit entry, got %v", audits.entries)
	}
	if len(sender.sent) != 1 || sender.sent[0].To[0] != "owner@client.example" {
		t.Errorf("expected notification to org contact, got %v", sender.sent)
	}
}

func TestExecuteSendProposal_AlreadySent(t *testing.T) {
	deps, store, _, sender := newProposalDeps()
	p := store.proposals["prop-1"]
	p.Status = proposal.StatusSent
	store.proposals["prop-1"] = p

	err := ExecuteSendProposal(context.Background(), SendProposalInput{
		ProposalID: "prop-1",
		SenderID:   "admin-1",
	}, deps)
	if !errors.Is(err, proposal.ErrNotDraft) {
		t.Errorf("expected ErrNotDraft, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Error("failed send must not notify")
	}
}

func TestExecuteRespondProposal_Accept(t *testing.T) {
	deps, store, _, _ := newProposalDeps()
	p := store.proposals["prop-1"]
	p.Status = proposal.StatusSent
	store.proposals["prop-1"] = p

	if err := ExecuteRespondProposal(context.Background(), RespondProposalInput{
		ProposalID: "prop-1",
		Accept:     true,
	}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := store.proposals["prop-1"]
	if got.Status != proposal.StatusAccepted || got.RespondedAt.IsZero() {
		t.Errorf("expected accepted with RespondedAt, got %s / %v", got.Status, got.RespondedAt)
	}
}
