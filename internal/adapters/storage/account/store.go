package account

import (
	"context"

	domain "portal/internal/domain/account"
)

// ListFilter narrows account listings.
type ListFilter struct {
	OrgID    string // empty = all
	Role     string // empty = all
	TeamRole string // empty = all
}

// Store persists Account state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, a domain.Account) error
	Delete(ctx context.Context, id string) error
}
