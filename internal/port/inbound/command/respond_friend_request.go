package command

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// RespondFriendRequest resolves the pending request for the exact
// ordered pair (requester -> recipient). Only the recipient responds;
// the transition out of pending is terminal for that edge.
type RespondFriendRequest struct {
	RequesterID string
	RecipientID string
	Accept      bool
}

func (c RespondFriendRequest) CommandName() string {
	return "social.respond_friend_request"
}

// RespondFriendRequestResult contains the resolved request.
type RespondFriendRequestResult struct {
	Request *model.FriendRequest
}

// RespondFriendRequestHandler handles the RespondFriendRequest command.
type RespondFriendRequestHandler interface {
	Handle(ctx context.Context, cmd RespondFriendRequest) (RespondFriendRequestResult, error)
}
