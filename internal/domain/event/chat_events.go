package event

import "time"

// ChatMessageSent is emitted after a chat message has been persisted.
// It doubles as the payload delivered on the recipient's direct subject.
type ChatMessageSent struct {
	BaseEvent
	MessageID   string    `json:"message_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sent_at"`
}

// NewChatMessageSent creates a new ChatMessageSent event.
func NewChatMessageSent(messageID, senderID, recipientID, content string, sentAt time.Time) ChatMessageSent {
	return ChatMessageSent{
		BaseEvent:   NewBaseEvent(EventTypeChatMessageSent, messageID, AggregateTypeChatMessage),
		MessageID:   messageID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		SentAt:      sentAt,
	}
}
