package audit

import (
	"errors"
	"time"
)

// Action constants recorded by orchestrators.
const (
	ActionOrgSwitched     = "org_switched"
	ActionProjectSwitched = "project_switched"
	ActionProjectExited   = "project_exited"
	ActionOrgExited       = "org_exited"
	ActionFeatureToggled  = "feature_toggled"
	ActionProposalSent    = "proposal_sent"
	ActionInvoiceIssued   = "invoice_issued"
	ActionAccountCreated  = "account_created"
)

// Domain errors
var (
	ErrEmptyActorID = errors.New("actor account ID is required")
	ErrEmptyAction  = errors.New("audit action is required")
)

// Entry is a single audit-trail record. Entries are append-only; the only
// mutation is the per-admin read marker feeding the Audits badge.
type Entry struct {
	ID         string
	ActorID    string
	Action     string
	TargetType string // organization, project, proposal, invoice, account, feature
	TargetID   string
	OrgID      string // organization the action applied to, if any
	Detail     string
	ReadAt     time.Time
	CreatedAt  time.Time
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if e.ActorID == "" {
		return ErrEmptyActorID
	}
	if e.Action == "" {
		return ErrEmptyAction
	}
	if e.CreatedAt.IsZero() {
		return errors.New("created_at must be set")
	}
	return nil
}

// IsRead returns true if the entry has been reviewed.
// INVARIANT: ReadAt field is not mutated
func (e *Entry) IsRead() bool {
	return !e.ReadAt.IsZero()
}

// MarkRead records when the entry was reviewed.
// PRE: Entry exists
// POST: ReadAt is set to now if previously zero
func (e *Entry) MarkRead(now time.Time) {
	if e.ReadAt.IsZero() {
		e.ReadAt = now
	}
}
