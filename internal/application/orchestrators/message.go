package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/message"

	"github.com/google/uuid"
)

// MessageStoreForSend defines the store interface needed by the message
// orchestrators.
type MessageStoreForSend interface {
	GetByID(ctx context.Context, id string) (message.Message, error)
	Save(ctx context.Context, m message.Message) error
}

// SendMessageInput carries input for the send-message orchestrator.
type SendMessageInput struct {
	OrgID      string
	SenderID   string
	ReceiverID string
	Subject    string
	Content    string
}

// SendMessageDeps holds dependencies for SendMessage.
type SendMessageDeps struct {
	MessageStore MessageStoreForSend
}

// ExecuteSendMessage creates and persists a direct message.
// PRE: Sender, receiver and content provided
// POST: Message persisted, unread
func ExecuteSendMessage(ctx context.Context, input SendMessageInput, deps SendMessageDeps) (string, error) {
	msg := message.Message{
		ID:         uuid.New().String(),
		OrgID:      input.OrgID,
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Subject:    input.Subject,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}
	if err := msg.Validate(); err != nil {
		return "", err
	}
	if err := deps.MessageStore.Save(ctx, msg); err != nil {
		return "", err
	}

	slog.Info("message_event", "event", "message_sent", "sender_id", input.SenderID, "receiver_id", input.ReceiverID)
	return msg.ID, nil
}

// ExecuteMarkMessageRead marks a message read for the receiving account. The
// operation is idempotent.
// PRE: Message exists
// POST: ReadAt set if previously unset
func ExecuteMarkMessageRead(ctx context.Context, messageID string, deps SendMessageDeps) error {
	msg, err := deps.MessageStore.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.IsRead() {
		return nil
	}
	msg.MarkRead(time.Now())
	return deps.MessageStore.Save(ctx, msg)
}
