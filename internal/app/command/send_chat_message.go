package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/outbound/messaging"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// sendChatMessageHandler implements command.SendChatMessageHandler.
type sendChatMessageHandler struct {
	messages  repository.ChatMessageRepository
	publisher messaging.EventPublisher
	logger    *zap.Logger
}

// NewSendChatMessageHandler creates a new SendChatMessageHandler.
func NewSendChatMessageHandler(
	messages repository.ChatMessageRepository,
	publisher messaging.EventPublisher,
	logger *zap.Logger,
) command.SendChatMessageHandler {
	return &sendChatMessageHandler{
		messages:  messages,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *sendChatMessageHandler) Handle(ctx context.Context, cmd command.SendChatMessage) (command.SendChatMessageResult, error) {
	message, err := model.NewChatMessage(cmd.SenderID, cmd.RecipientID, cmd.Content)
	if err != nil {
		return command.SendChatMessageResult{}, err
	}

	// Persistence must succeed before delivery is attempted.
	if err := h.messages.Create(ctx, message); err != nil {
		return command.SendChatMessageResult{}, err
	}

	// Delivery is best-effort: a disconnected recipient reads the
	// message from history on their next connection.
	evt := event.NewChatMessageSent(
		message.ID().String(),
		message.SenderID(),
		message.RecipientID(),
		message.Content(),
		message.SentAt(),
	)
	if err := h.publisher.PublishDirect(ctx, message.RecipientID(), evt); err != nil {
		h.logger.Debug("live chat delivery skipped",
			zap.String("message_id", message.ID().String()),
			zap.String("recipient_id", message.RecipientID()),
			zap.Error(err),
		)
	}

	return command.SendChatMessageResult{Message: message}, nil
}
