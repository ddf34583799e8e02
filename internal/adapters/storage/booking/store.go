package booking

import (
	"context"

	domain "portal/internal/domain/booking"
)

// Store persists Sync EventType state, hosts included.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.EventType, error)
	ListByTenant(ctx context.Context, tenantType, tenantID string) ([]domain.EventType, error)
	Save(ctx context.Context, e domain.EventType) error
	Delete(ctx context.Context, id string) error
}
