package booking

import (
	"errors"
	"strings"
	"time"
)

// Routing strategy constants. Strategies are configuration sent to the
// scheduling backend; the portal validates and stores them but performs no
// scheduling computation.
const (
	RoutingRoundRobin = "round_robin"
	RoutingWeighted   = "weighted"
	RoutingPriority   = "priority"
)

// Tenant type constants for event-type ownership.
const (
	TenantOrganization = "organization"
	TenantProject      = "project"
)

// Domain errors
var (
	ErrEmptyName        = errors.New("event type name cannot be empty")
	ErrEmptySlug        = errors.New("event type slug cannot be empty")
	ErrEmptyTenant      = errors.New("event type must belong to a tenant")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrNegativeBuffer   = errors.New("buffer minutes cannot be negative")
	ErrInvalidRouting   = errors.New("routing must be one of: round_robin, weighted, priority")
	ErrNoHosts          = errors.New("event type needs at least one host")
	ErrInvalidWeight    = errors.New("weighted routing requires a positive weight on every host")
	ErrInvalidPriority  = errors.New("priority routing requires a non-negative priority on every host")
	ErrDuplicateHost    = errors.New("a host can only be listed once")
	ErrEmptyHostAccount = errors.New("host account ID is required")
)

// Host is a bookable team member on an event type. Weight is used by weighted
// routing; Priority by priority routing (lower is first).
type Host struct {
	AccountID string
	Weight    int
	Priority  int
}

// EventType is a bookable meeting definition for the Sync scheduling module.
type EventType struct {
	ID              string
	TenantType      string // organization, project
	TenantID        string
	Name            string
	Slug            string
	DurationMinutes int
	BufferMinutes   int
	Routing         string
	Hosts           []Host
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the event type, including per-strategy host constraints.
// PRE: EventType struct is populated
// POST: Returns nil if valid, error otherwise
func (e *EventType) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if e.Slug == "" {
		return ErrEmptySlug
	}
	if e.TenantType == "" || e.TenantID == "" {
		return ErrEmptyTenant
	}
	if e.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if e.BufferMinutes < 0 {
		return ErrNegativeBuffer
	}
	switch e.Routing {
	case RoutingRoundRobin, RoutingWeighted, RoutingPriority:
	default:
		return ErrInvalidRouting
	}
	return e.validateHosts()
}

func (e *EventType) validateHosts() error {
	if len(e.Hosts) == 0 {
		return ErrNoHosts
	}
	seen := make(map[string]bool, len(e.Hosts))
	for _, h := range e.Hosts {
		if h.AccountID == "" {
			return ErrEmptyHostAccount
		}
		if seen[h.AccountID] {
			return ErrDuplicateHost
		}
		seen[h.AccountID] = true
		if e.Routing == RoutingWeighted && h.Weight <= 0 {
			return ErrInvalidWeight
		}
		if e.Routing == RoutingPriority && h.Priority < 0 {
			return ErrInvalidPriority
		}
	}
	return nil
}
