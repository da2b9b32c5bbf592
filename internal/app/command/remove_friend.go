package command

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/outbound/messaging"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// removeFriendHandler implements command.RemoveFriendHandler.
type removeFriendHandler struct {
	requests  repository.FriendRequestRepository
	publisher messaging.EventPublisher
	logger    *zap.Logger
}

// NewRemoveFriendHandler creates a new RemoveFriendHandler.
func NewRemoveFriendHandler(
	requests repository.FriendRequestRepository,
	publisher messaging.EventPublisher,
	logger *zap.Logger,
) command.RemoveFriendHandler {
	return &removeFriendHandler{
		requests:  requests,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *removeFriendHandler) Handle(ctx context.Context, cmd command.RemoveFriend) (command.RemoveFriendResult, error) {
	if cmd.UserID == "" || cmd.OtherID == "" {
		return command.RemoveFriendResult{}, domainerror.ErrUserIDRequired
	}

	request, err := h.requests.FindAcceptedBetween(ctx, cmd.UserID, cmd.OtherID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return command.RemoveFriendResult{}, domainerror.FriendshipNotFound(cmd.UserID, cmd.OtherID)
		}
		return command.RemoveFriendResult{}, err
	}

	// Hard delete: the edge disappears entirely, so a later request
	// between the same pair starts fresh.
	if err := h.requests.Delete(ctx, request.ID()); err != nil {
		return command.RemoveFriendResult{}, err
	}

	evt := event.NewFriendRemoved(request.ID().String(), cmd.UserID, cmd.OtherID)
	if err := h.publisher.Publish(ctx, evt); err != nil {
		h.logger.Warn("failed to publish friend removal",
			zap.String("request_id", request.ID().String()),
			zap.Error(err),
		)
	}
	if err := h.publisher.PublishDirect(ctx, cmd.OtherID, evt); err != nil {
		h.logger.Debug("direct delivery of removal skipped",
			zap.String("user_id", cmd.OtherID),
			zap.Error(err),
		)
	}

	return command.RemoveFriendResult{RemovedID: cmd.OtherID}, nil
}
