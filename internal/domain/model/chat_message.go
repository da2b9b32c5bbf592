package model

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
)

// ChatMessage is one persisted direct message. Messages are immutable
// once created; ordering within a conversation follows SentAt, and the
// ULID id sorts in the same order as a tiebreaker.
type ChatMessage struct {
	id          ulid.ULID
	senderID    string
	recipientID string
	content     string
	sentAt      time.Time
}

// NewChatMessage creates a new ChatMessage stamped with the current time.
func NewChatMessage(senderID, recipientID, content string) (*ChatMessage, error) {
	if senderID == "" || recipientID == "" {
		return nil, domainerror.ErrUserIDRequired
	}
	if senderID == recipientID {
		return nil, domainerror.ErrSelfMessage
	}
	if strings.TrimSpace(content) == "" {
		return nil, domainerror.ErrContentRequired
	}

	return &ChatMessage{
		id:          ulid.Make(),
		senderID:    senderID,
		recipientID: recipientID,
		content:     content,
		sentAt:      time.Now().UTC(),
	}, nil
}

// ReconstructChatMessage creates a ChatMessage from persisted data.
func ReconstructChatMessage(
	id ulid.ULID,
	senderID string,
	recipientID string,
	content string,
	sentAt time.Time,
) *ChatMessage {
	return &ChatMessage{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		content:     content,
		sentAt:      sentAt,
	}
}

// Getters

func (m *ChatMessage) ID() ulid.ULID       { return m.id }
func (m *ChatMessage) SenderID() string    { return m.senderID }
func (m *ChatMessage) RecipientID() string { return m.recipientID }
func (m *ChatMessage) Content() string     { return m.content }
func (m *ChatMessage) SentAt() time.Time   { return m.sentAt }

// Between reports whether the message belongs to the conversation
// between the unordered pair (a, b).
func (m *ChatMessage) Between(a, b string) bool {
	return (m.senderID == a && m.recipientID == b) ||
		(m.senderID == b && m.recipientID == a)
}
