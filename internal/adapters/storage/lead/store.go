package lead

import (
	"context"

	domain "portal/internal/domain/lead"
)

// ListFilter narrows lead listings.
type ListFilter struct {
	Status     string // empty = all
	AssignedTo string // empty = all
}

// Store persists Lead state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Lead, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Lead, error)
	CountNew(ctx context.Context) (int, error)
	Save(ctx context.Context, l domain.Lead) error
	Delete(ctx context.Context, id string) error
}
