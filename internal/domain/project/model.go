package project

import (
	"errors"
	"strings"
	"time"

	"portal/internal/domain/feature"
)

// Project status constants
const (
	StatusActive   = "active"
	StatusPaused   = "paused"
	StatusArchived = "archived"
)

// Domain errors
var (
	ErrEmptyTitle    = errors.New("project title cannot be empty")
	ErrEmptyOrgID    = errors.New("project must belong to an organization")
	ErrInvalidStatus = errors.New("status must be one of: active, paused, archived")
)

// Project is a client's individual workspace (a "tenant") under exactly one
// Organization. Its feature set may differ from its organization's.
type Project struct {
	ID        string
	OrgID     string
	Title     string
	Domain    string
	Status    string
	Features  feature.Flags
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Project has valid data.
// PRE: Project struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.OrgID == "" {
		return ErrEmptyOrgID
	}
	switch p.Status {
	case StatusActive, StatusPaused, StatusArchived:
	default:
		return ErrInvalidStatus
	}
	return nil
}

// IsActive returns true if the project is active.
// INVARIANT: Project fields are not mutated
func (p *Project) IsActive() bool {
	return p.Status == StatusActive
}
