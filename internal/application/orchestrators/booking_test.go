package orchestrators

import (
	"context"
	"errors"
	"testing"

	"portal/internal/domain/booking"
)

// mockBookingStore implements BookingStore for testing.
type mockBookingStore struct {
	eventTypes map[string]booking.EventType
}

func (m *mockBookingStore) GetByID(_ context.Context, id string) (booking.EventType, error) {
	e, ok := m.eventTypes[id]
	if !ok {
		return booking.EventType{}, errors.New("not found")
	}
	return e, nil
}

func (m *mockBookingStore) Save(_ context.Context, e booking.EventType) error {
	m.eventTypes[e.ID] = e
	return nil
}

func (m *mockBookingStore) Delete(_ context.Context, id string) error {
	delete(m.eventTypes, id)
	return nil
}

func TestExecuteUpsertEventType_CreateRoundRobin(t *testing.T) {
	store := &mockBookingStore{eventTypes: map[string]booking.EventType{}}
	id, err := ExecuteUpsertEventType(context.Background(), UpsertEventTypeInput{
		TenantType:      booking.TenantProject,
		TenantID:        "proj-1",
		Name:            "Kickoff Call",
		DurationMinutes: 45,
		Routing:         booking.RoutingRoundRobin,
		Hosts:           []booking.Host{{AccountID: "acct-1"}, {AccountID: "acct-2"}},
	}, BookingDeps{BookingStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := store.eventTypes[id]
	if !ok {
		t.Fatal("expected event type to be persisted")
	}
	if e.Slug != "kickoff-call" {
		t.Errorf("expected derived slug kickoff-call, got %s", e.Slug)
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on create")
	}
}

func TestExecuteUpsertEventType_WeightedNeedsWeights(t *testing.T) {
	store := &mockBookingStore{eventTypes: map[string]booking.EventType{}}
	_, err := ExecuteUpsertEventType(context.Background(), UpsertEventTypeInput{
		TenantType:      booking.TenantOrganization,
		TenantID:        "org-1",
		Name:            "Strategy Session",
		DurationMinutes: 60,
		Routing:         booking.RoutingWeighted,
		Hosts:           []booking.Host{{AccountID: "acct-1", Weight: 2}, {AccountID: "acct-2"}},
	}, BookingDeps{BookingStore: store})
	if !errors.Is(err, booking.ErrInvalidWeight) {
		t.Errorf("expected ErrInvalidWeight, got %v", err)
	}
	if len(store.eventTypes) != 0 {
		t.Error("invalid event type must not be stored")
	}
}

func TestExecuteUpsertEventType_UpdateKeepsCreatedAt(t *testing.T) {
	store := &mockBookingStore{eventTypes: map[string]booking.EventType{}}
	deps := BookingDeps{BookingStore: store}

	id, err := ExecuteUpsertEventType(context.Background(), UpsertEventTypeInput{
		TenantType:      booking.TenantProject,
		TenantID:        "proj-1",
		Name:            "Kickoff Call",
		DurationMinutes: 45,
		Routing:         booking.RoutingRoundRobin,
		Hosts:           []booking.Host{{AccountID: "acct-1"}},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := store.eventTypes[id].CreatedAt

	_, err = ExecuteUpsertEventType(context.Background(), UpsertEventTypeInput{
		ID:              id,
		TenantType:      booking.TenantProject,
		TenantID:        "proj-1",
		Name:            "Kickoff Call",
		DurationMinutes: 30,
		Routing:         booking.RoutingPriority,
		Hosts:           []booking.Host{{AccountID: "acct-1", Priority: 0}, {AccountID: "acct-2", Priority: 1}},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error on update: %v", err)
	}
	e := store.eventTypes[id]
	if !e.CreatedAt.Equal(created) {
		t.Error("expected CreatedAt preserved across update")
	}
	if e.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt set on update")
	}
	if e.DurationMinutes != 30 || e.Routing != booking.RoutingPriority {
		t.Errorf("expected updated fields, got duration=%d routing=%s", e.DurationMinutes, e.Routing)
	}
}
