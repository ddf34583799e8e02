package invoice

import (
	"context"

	domain "portal/internal/domain/invoice"
)

// Store persists Invoice state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Invoice, error)
	ListByOrgID(ctx context.Context, orgID string) ([]domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	CountUnpaid(ctx context.Context) (int, error)
	CountUnpaidByOrgID(ctx context.Context, orgID string) (int, error)
	Save(ctx context.Context, i domain.Invoice) error
	Delete(ctx context.Context, id string) error
}
