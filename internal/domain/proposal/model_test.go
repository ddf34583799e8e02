package proposal

import (
	"testing"
	"time"
)

func validProposal() Proposal {
	return Proposal{
		OrgID:   "o1",
		Title:   "Website Redesign",
		Content: "## Scope\n\nFull redesign of the marketing site.",
		Status:  StatusDraft,
	}
}

// TestProposal_Validate verifies required fields.
func TestProposal_Validate(t *testing.T) {
	p := validProposal()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid proposal, got %v", err)
	}

	p = validProposal()
	p.Title = "  "
	if err := p.Validate(); err != ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	p = validProposal()
	p.Content = ""
	if err := p.Validate(); err != ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

// TestProposal_Lifecycle verifies draft -> sent -> accepted/declined.
func TestProposal_Lifecycle(t *testing.T) {
	now := time.Now()

	p := validProposal()
	if err := p.Accept(now); err != ErrNotSent {
		t.Fatalf("draft cannot be accepted, got %v", err)
	}
	if err := p.Send("", now); err != ErrEmptySenderID {
		t.Fatalf("expected ErrEmptySenderID, got %v", err)
	}
	if err := p.Send("admin1", now); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if p.SentBy != "admin1" || p.SentAt.IsZero() {
		t.Fatalf("expected sender metadata recorded, got %+v", p)
	}
	if err := p.Send("admin1", now); err != ErrNotDraft {
		t.Fatalf("double send must fail, got %v", err)
	}
	if err := p.Accept(now); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if err := p.Decline(now); err != ErrNotSent {
		t.Fatalf("accepted proposal cannot be declined, got %v", err)
	}

	p = validProposal()
	_ = p.Send("admin1", now)
	if err := p.Decline(now); err != nil {
		t.Fatalf("Decline failed: %v", err)
	}
	if p.Status != StatusDeclined {
		t.Fatalf("expected declined, got %s", p.Status)
	}
}
