package lead

import (
	"errors"
	"strings"
	"time"
)

// Lead status constants, in pipeline order.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// ValidStatuses contains all valid lead statuses.
var ValidStatuses = []string{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost}

// Domain errors
var (
	ErrEmptyName       = errors.New("lead name cannot be empty")
	ErrInvalidEmail    = errors.New("lead email must contain '@'")
	ErrInvalidStatus   = errors.New("status must be one of: new, contacted, qualified, converted, lost")
	ErrAlreadyClosed   = errors.New("lead is already converted or lost")
	ErrEmptyAssigneeID = errors.New("assignee account ID is required")
)

// Lead is a prospective client captured from an intake form or entered by a
// sales rep. New leads feed the Clients badge count.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Company    string
	Source     string // form, referral, manual
	Status     string
	AssignedTo string // sales rep account ID, empty if unassigned
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks if the Lead has valid data.
// PRE: Lead struct is populated
// POST: Returns nil if valid, error otherwise
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if l.Email != "" && !strings.Contains(l.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidStatus(l.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsNew returns true for leads not yet worked.
// INVARIANT: Lead fields are not mutated
func (l *Lead) IsNew() bool {
	return l.Status == StatusNew
}

// IsClosed returns true for converted or lost leads.
// INVARIANT: Lead fields are not mutated
func (l *Lead) IsClosed() bool {
	return l.Status == StatusConverted || l.Status == StatusLost
}

// Assign sets the owning sales rep.
// PRE: accountID is non-empty; lead is not closed
// POST: AssignedTo is set
func (l *Lead) Assign(accountID string) error {
	if accountID == "" {
		return ErrEmptyAssigneeID
	}
	if l.IsClosed() {
		return ErrAlreadyClosed
	}
	l.AssignedTo = accountID
	return nil
}

// Advance moves the lead to a new pipeline status.
// PRE: status is valid; lead is not closed
// POST: Status is updated
func (l *Lead) Advance(status string) error {
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	if l.IsClosed() {
		return ErrAlreadyClosed
	}
	l.Status = status
	return nil
}

func isValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
