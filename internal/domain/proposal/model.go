package proposal

import (
	"errors"
	"strings"
	"time"
)

// Proposal status constants
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Domain errors
var (
	ErrEmptyOrgID    = errors.New("proposal must belong to an organization")
	ErrEmptyTitle    = errors.New("proposal title cannot be empty")
	ErrEmptyContent  = errors.New("proposal content cannot be empty")
	ErrNotDraft      = errors.New("only draft proposals can be sent")
	ErrNotSent       = errors.New("only sent proposals can be responded to")
	ErrEmptySenderID = errors.New("sender account ID is required")
)

// Proposal is a scoped piece of work offered to a client organization.
// Content is markdown, rendered safely in the portal.
type Proposal struct {
	ID          string
	OrgID       string
	Title       string
	Content     string
	AmountCents int64
	Status      string
	CreatedBy   string
	SentBy      string
	SentAt      time.Time
	RespondedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the Proposal has valid data.
// PRE: Proposal struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Proposal) Validate() error {
	if p.OrgID == "" {
		return ErrEmptyOrgID
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Send transitions a draft proposal to sent.
// PRE: Proposal is in draft status; senderID is non-empty
// POST: Status is sent, SentBy and SentAt recorded
func (p *Proposal) Send(senderID string, now time.Time) error {
	if senderID == "" {
		return ErrEmptySenderID
	}
	if p.Status != StatusDraft {
		return ErrNotDraft
	}
	p.Status = StatusSent
	p.SentBy = senderID
	p.SentAt = now
	return nil
}

// Accept records the client's acceptance.
// PRE: Proposal is in sent status
// POST: Status is accepted, RespondedAt recorded
func (p *Proposal) Accept(now time.Time) error {
	if p.Status != StatusSent {
		return ErrNotSent
	}
	p.Status = StatusAccepted
	p.RespondedAt = now
	return nil
}

// Decline records the client's decline.
// PRE: Proposal is in sent status
// POST: Status is declined, RespondedAt recorded
func (p *Proposal) Decline(now time.Time) error {
	if p.Status != StatusSent {
		return ErrNotSent
	}
	p.Status = StatusDeclined
	p.RespondedAt = now
	return nil
}
