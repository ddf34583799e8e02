package project

import (
	"context"

	domain "portal/internal/domain/project"
)

// Store persists Project state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Project, error)
	ListByOrgID(ctx context.Context, orgID string) ([]domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id string) error
}
