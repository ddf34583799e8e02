package audit

import (
	"context"

	domain "portal/internal/domain/audit"
)

// ListFilter narrows audit listings.
type ListFilter struct {
	OrgID   string // empty = all
	ActorID string // empty = all
	Limit   int    // 0 = no limit
}

// Store persists audit Entry state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Entry, error)
	CountUnread(ctx context.Context) (int, error)
	Save(ctx context.Context, e domain.Entry) error
	MarkAllRead(ctx context.Context) error
}
