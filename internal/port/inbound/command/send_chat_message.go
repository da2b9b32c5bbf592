package command

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// SendChatMessage persists a direct message and then delivers it to the
// recipient's private channel. Persistence must succeed before delivery
// is attempted; delivery failure never rolls the message back.
type SendChatMessage struct {
	SenderID    string
	RecipientID string
	Content     string
}

func (c SendChatMessage) CommandName() string {
	return "social.send_chat_message"
}

// SendChatMessageResult contains the persisted message.
type SendChatMessageResult struct {
	Message *model.ChatMessage
}

// SendChatMessageHandler handles the SendChatMessage command.
type SendChatMessageHandler interface {
	Handle(ctx context.Context, cmd SendChatMessage) (SendChatMessageResult, error)
}
