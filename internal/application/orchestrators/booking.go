package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingStore defines the store interface needed by the Sync orchestrators.
type BookingStore interface {
	GetByID(ctx context.Context, id string) (booking.EventType, error)
	Save(ctx context.Context, e booking.EventType) error
	Delete(ctx context.Context, id string) error
}

// BookingDeps holds dependencies for the Sync orchestrators.
type BookingDeps struct {
	BookingStore BookingStore
}

// UpsertEventTypeInput carries input for ExecuteUpsertEventType. An empty ID
// creates a new event type.
type UpsertEventTypeInput struct {
	ID              string
	TenantType      string // organization, project
	TenantID        string
	Name            string
	Slug            string // derived from name when empty
	DurationMinutes int
	BufferMinutes   int
	Routing         string // round_robin, weighted, priority
	Hosts           []booking.Host
}

// ExecuteUpsertEventType creates or updates a Sync event type. Routing config
// is validated and stored; scheduling itself happens in the booking backend.
// PRE: Valid name, duration, routing and hosts for the chosen strategy
// POST: Event type and hosts persisted
func ExecuteUpsertEventType(ctx context.Context, input UpsertEventTypeInput, deps BookingDeps) (string, error) {
	e := booking.EventType{
		ID:              input.ID,
		TenantType:      input.TenantType,
		TenantID:        input.TenantID,
		Name:            input.Name,
		Slug:            input.Slug,
		DurationMinutes: input.DurationMinutes,
		BufferMinutes:   input.BufferMinutes,
		Routing:         input.Routing,
		Hosts:           input.Hosts,
	}
	now := time.Now()
	if e.ID == "" {
		e.ID = uuid.New().String()
		e.CreatedAt = now
	} else {
		existing, err := deps.BookingStore.GetByID(ctx, e.ID)
		if err != nil {
			return "", err
		}
		e.CreatedAt = existing.CreatedAt
		e.UpdatedAt = now
	}
	if e.Slug == "" {
		e.Slug = Slugify(e.Name)
	}
	if err := e.Validate(); err != nil {
		return "", err
	}
	if err := deps.BookingStore.Save(ctx, e); err != nil {
		return "", err
	}

	slog.Info("sync_event", "event", "event_type_saved", "event_type_id", e.ID, "routing", e.Routing, "hosts", len(e.Hosts))
	return e.ID, nil
}

// ExecuteDeleteEventType removes a Sync event type and its hosts.
// PRE: id is non-empty
// POST: Event type removed
func ExecuteDeleteEventType(ctx context.Context, id string, deps BookingDeps) error {
	if err := deps.BookingStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("sync_event", "event", "event_type_deleted", "event_type_id", id)
	return nil
}
