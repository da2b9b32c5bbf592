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

// respondFriendRequestHandler implements command.RespondFriendRequestHandler.
type respondFriendRequestHandler struct {
	requests  repository.FriendRequestRepository
	publisher messaging.EventPublisher
	logger    *zap.Logger
}

// NewRespondFriendRequestHandler creates a new RespondFriendRequestHandler.
func NewRespondFriendRequestHandler(
	requests repository.FriendRequestRepository,
	publisher messaging.EventPublisher,
	logger *zap.Logger,
) command.RespondFriendRequestHandler {
	return &respondFriendRequestHandler{
		requests:  requests,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *respondFriendRequestHandler) Handle(ctx context.Context, cmd command.RespondFriendRequest) (command.RespondFriendRequestResult, error) {
	if cmd.RequesterID == "" || cmd.RecipientID == "" {
		return command.RespondFriendRequestResult{}, domainerror.ErrUserIDRequired
	}

	request, err := h.requests.FindLatestByPair(ctx, cmd.RequesterID, cmd.RecipientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return command.RespondFriendRequestResult{}, domainerror.RequestNotFound(cmd.RequesterID, cmd.RecipientID)
		}
		return command.RespondFriendRequestResult{}, err
	}

	if cmd.Accept {
		// Opposite-direction requests stay independent edges, so
		// accepting one while the pair is already friends would create
		// a second accepted edge. Rejecting a leftover request is
		// still allowed.
		friends, checkErr := h.requests.ExistsAcceptedBetween(ctx, cmd.RequesterID, cmd.RecipientID)
		if checkErr != nil {
			return command.RespondFriendRequestResult{}, checkErr
		}
		if friends {
			return command.RespondFriendRequestResult{}, domainerror.ErrAlreadyFriends
		}
		err = request.Accept()
	} else {
		err = request.Reject()
	}
	if err != nil {
		return command.RespondFriendRequestResult{}, err
	}

	if err := h.requests.Update(ctx, request); err != nil {
		return command.RespondFriendRequestResult{}, err
	}

	evt := event.NewFriendRequestResolved(request.ID().String(), request.RequesterID(), request.RecipientID(), cmd.Accept)
	if err := h.publisher.Publish(ctx, evt); err != nil {
		h.logger.Warn("failed to publish friend request resolution",
			zap.String("request_id", request.ID().String()),
			zap.Error(err),
		)
	}
	// The requester learns the outcome live if connected.
	if err := h.publisher.PublishDirect(ctx, request.RequesterID(), evt); err != nil {
		h.logger.Debug("direct delivery of resolution skipped",
			zap.String("requester_id", request.RequesterID()),
			zap.Error(err),
		)
	}

	return command.RespondFriendRequestResult{Request: request}, nil
}
