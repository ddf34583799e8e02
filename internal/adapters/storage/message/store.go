package message

import (
	"context"

	domain "portal/internal/domain/message"
)

// Store persists Message state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Message, error)
	ListByReceiverID(ctx context.Context, receiverID string) ([]domain.Message, error)
	ListByOrgID(ctx context.Context, orgID string) ([]domain.Message, error)
	CountUnread(ctx context.Context, receiverID string) (int, error)
	Save(ctx context.Context, m domain.Message) error
	Delete(ctx context.Context, id string) error
}
