package message

import (
	"testing"
	"time"
)

// TestMessage_Validate verifies required fields.
func TestMessage_Validate(t *testing.T) {
	m := Message{SenderID: "a1", ReceiverID: "a2", Content: "Hello", CreatedAt: time.Now()}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	m.Content = ""
	if err := m.Validate(); err != ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

// TestMessage_ReadTracking verifies read state transitions.
func TestMessage_ReadTracking(t *testing.T) {
	now := time.Now()
	m := Message{SenderID: "a1", ReceiverID: "a2", Content: "Hi", CreatedAt: now}

	if m.IsRead() {
		t.Error("new message should be unread")
	}
	m.MarkRead(now)
	if !m.IsRead() {
		t.Error("expected read after MarkRead")
	}
	first := m.ReadAt
	m.MarkRead(now.Add(time.Hour))
	if !m.ReadAt.Equal(first) {
		t.Error("MarkRead must not overwrite the first read time")
	}
}
