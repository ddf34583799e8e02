package message

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptySenderID   = errors.New("sender account ID is required")
	ErrEmptyReceiverID = errors.New("receiver account ID is required")
	ErrEmptyContent    = errors.New("message content cannot be empty")
)

// Message is a direct in-portal message between an agency account and a
// client account, scoped to the client's organization.
type Message struct {
	ID         string
	OrgID      string
	SenderID   string
	ReceiverID string
	Subject    string
	Content    string
	ReadAt     time.Time
	CreatedAt  time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if m.SenderID == "" {
		return ErrEmptySenderID
	}
	if m.ReceiverID == "" {
		return ErrEmptyReceiverID
	}
	if m.Content == "" {
		return ErrEmptyContent
	}
	if m.CreatedAt.IsZero() {
		return errors.New("created_at must be set")
	}
	return nil
}

// IsRead returns true if the message has been read.
// INVARIANT: ReadAt field is not mutated
func (m *Message) IsRead() bool {
	return !m.ReadAt.IsZero()
}

// MarkRead records when the message was read.
// PRE: Message exists
// POST: ReadAt is set if previously zero
func (m *Message) MarkRead(now time.Time) {
	if m.ReadAt.IsZero() {
		m.ReadAt = now
	}
}
