package booking

import "testing"

func validEventType() EventType {
	return EventType{
		TenantType:      TenantProject,
		TenantID:        "p1",
		Name:            "Intro Call",
		Slug:            "intro-call",
		DurationMinutes: 30,
		Routing:         RoutingRoundRobin,
		Hosts:           []Host{{AccountID: "a1"}, {AccountID: "a2"}},
	}
}

// TestEventType_Validate verifies base field validation.
func TestEventType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *EventType)
		wantErr error
	}{
		{"valid", func(e *EventType) {}, nil},
		{"empty name", func(e *EventType) { e.Name = " " }, ErrEmptyName},
		{"empty slug", func(e *EventType) { e.Slug = "" }, ErrEmptySlug},
		{"no tenant", func(e *EventType) { e.TenantID = "" }, ErrEmptyTenant},
		{"zero duration", func(e *EventType) { e.DurationMinutes = 0 }, ErrInvalidDuration},
		{"negative buffer", func(e *EventType) { e.BufferMinutes = -5 }, ErrNegativeBuffer},
		{"bad routing", func(e *EventType) { e.Routing = "random" }, ErrInvalidRouting},
		{"no hosts", func(e *EventType) { e.Hosts = nil }, ErrNoHosts},
		{"duplicate host", func(e *EventType) { e.Hosts = []Host{{AccountID: "a1"}, {AccountID: "a1"}} }, ErrDuplicateHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEventType()
			tt.mutate(&e)
			if err := e.Validate(); err != tt.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestEventType_Validate_WeightedRouting verifies weighted hosts need weights.
func TestEventType_Validate_WeightedRouting(t *testing.T) {
	e := validEventType()
	e.Routing = RoutingWeighted
	e.Hosts = []Host{{AccountID: "a1", Weight: 3}, {AccountID: "a2"}}

	if err := e.Validate(); err != ErrInvalidWeight {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	e.Hosts[1].Weight = 1
	if err := e.Validate(); err != nil {
		t.Fatalf("expected valid weighted config, got %v", err)
	}
}

// TestEventType_Validate_PriorityRouting verifies priority hosts need
// non-negative priorities.
func TestEventType_Validate_PriorityRouting(t *testing.T) {
	e := validEventType()
	e.Routing = RoutingPriority
	e.Hosts = []Host{{AccountID: "a1", Priority: 0}, {AccountID: "a2", Priority: -1}}

	if err := e.Validate(); err != ErrInvalidPriority {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	e.Hosts[1].Priority = 2
	if err := e.Validate(); err != nil {
		t.Fatalf("expected valid priority config, got %v", err)
	}
}
