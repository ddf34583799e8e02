package blog

import (
	"context"

	domain "portal/internal/domain/blog"
)

// Store persists blog Post state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Post, error)
	GetBySlug(ctx context.Context, tenantType, tenantID, slug string) (domain.Post, error)
	ListByTenant(ctx context.Context, tenantType, tenantID string) ([]domain.Post, error)
	Save(ctx context.Context, p domain.Post) error
	Delete(ctx context.Context, id string) error
}
