package featureflag

import (
	"context"

	"portal/internal/domain/feature"
)

// Store persists per-tenant feature flags. Tenant type is "organization" or
// "project"; flags are tri-state — a missing row means unset.
type Store interface {
	GetForTenant(ctx context.Context, tenantType, tenantID string) (feature.Flags, error)
	Set(ctx context.Context, tenantType, tenantID, key string, enabled bool) error
	Clear(ctx context.Context, tenantType, tenantID, key string) error
}
