package organization

import (
	"context"

	domain "portal/internal/domain/organization"
)

// ListFilter narrows organization listings.
type ListFilter struct {
	OrgType string // empty = all
	Status  string // empty = all
}

// Store persists Organization state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (domain.Organization, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Organization, error)
	Save(ctx context.Context, o domain.Organization) error
	Delete(ctx context.Context, id string) error
}
