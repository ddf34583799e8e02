package organization

import (
	"errors"
	"strings"
	"time"

	"portal/internal/domain/feature"
)

// Organization type constants
const (
	TypeAgency = "agency"
	TypeClient = "client"
)

// Organization status constants
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Domain errors
var (
	ErrEmptyName   = errors.New("organization name cannot be empty")
	ErrEmptySlug   = errors.New("organization slug cannot be empty")
	ErrInvalidSlug = errors.New("organization slug must be lowercase letters, digits and hyphens")
	ErrInvalidType = errors.New("org_type must be one of: agency, client")
)

// Organization is a top-level tenant: either the operating agency itself or a
// client account owning zero or more projects. Created and updated by agency
// admins; read-only to the navigation subsystem.
type Organization struct {
	ID         string
	Name       string
	Slug       string
	Domain     string
	OrgType    string // agency, client
	ThemeColor string
	Status     string
	Features   feature.Flags
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks if the Organization has valid data.
// PRE: Organization struct is populated
// POST: Returns nil if valid, error otherwise
func (o *Organization) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrEmptyName
	}
	if o.Slug == "" {
		return ErrEmptySlug
	}
	if !isValidSlug(o.Slug) {
		return ErrInvalidSlug
	}
	if o.OrgType != TypeAgency && o.OrgType != TypeClient {
		return ErrInvalidType
	}
	return nil
}

// IsAgency returns true if this is the operator's own organization.
// INVARIANT: Organization fields are not mutated
func (o *Organization) IsAgency() bool {
	return o.OrgType == TypeAgency
}

func isValidSlug(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
