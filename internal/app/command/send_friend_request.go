package command

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/outbound/messaging"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// sendFriendRequestHandler implements command.SendFriendRequestHandler.
type sendFriendRequestHandler struct {
	requests  repository.FriendRequestRepository
	publisher messaging.EventPublisher
	logger    *zap.Logger
}

// NewSendFriendRequestHandler creates a new SendFriendRequestHandler.
func NewSendFriendRequestHandler(
	requests repository.FriendRequestRepository,
	publisher messaging.EventPublisher,
	logger *zap.Logger,
) command.SendFriendRequestHandler {
	return &sendFriendRequestHandler{
		requests:  requests,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *sendFriendRequestHandler) Handle(ctx context.Context, cmd command.SendFriendRequest) (command.SendFriendRequestResult, error) {
	request, err := model.NewFriendRequest(cmd.RequesterID, cmd.RecipientID)
	if err != nil {
		return command.SendFriendRequestResult{}, err
	}

	// An existing friendship must be removed before a new request can
	// be sent. Without this gate a second accepted edge could form for
	// the same pair, and removal only deletes one edge.
	friends, err := h.requests.ExistsAcceptedBetween(ctx, cmd.RequesterID, cmd.RecipientID)
	if err != nil {
		return command.SendFriendRequestResult{}, err
	}
	if friends {
		return command.SendFriendRequestResult{}, domainerror.ErrAlreadyFriends
	}

	// Uniqueness of the pending edge for this ordered pair is enforced
	// atomically by the repository; no check-then-insert race exists.
	if err := h.requests.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return command.SendFriendRequestResult{}, domainerror.ErrDuplicatePending
		}
		return command.SendFriendRequestResult{}, err
	}

	evt := event.NewFriendRequestSent(request.ID().String(), request.RequesterID(), request.RecipientID())
	if err := h.publisher.Publish(ctx, evt); err != nil {
		h.logger.Warn("failed to publish friend request event",
			zap.String("request_id", request.ID().String()),
			zap.Error(err),
		)
	}
	// Live notification for the recipient; history is in the listing.
	if err := h.publisher.PublishDirect(ctx, request.RecipientID(), evt); err != nil {
		h.logger.Debug("direct delivery of friend request skipped",
			zap.String("recipient_id", request.RecipientID()),
			zap.Error(err),
		)
	}

	return command.SendFriendRequestResult{Request: request}, nil
}
