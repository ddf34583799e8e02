package proposal

import (
	"context"

	domain "portal/internal/domain/proposal"
)

// Store persists Proposal state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Proposal, error)
	ListByOrgID(ctx context.Context, orgID string) ([]domain.Proposal, error)
	List(ctx context.Context) ([]domain.Proposal, error)
	Save(ctx context.Context, p domain.Proposal) error
	Delete(ctx context.Context, id string) error
}
