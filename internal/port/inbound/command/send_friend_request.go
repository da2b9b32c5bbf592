package command

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// SendFriendRequest creates a new pending friend request edge from the
// requester to the recipient. A pending edge already existing for the
// same ordered pair is rejected; an opposite-direction pending edge is
// deliberately not reconciled into an acceptance.
type SendFriendRequest struct {
	RequesterID string
	RecipientID string
}

func (c SendFriendRequest) CommandName() string {
	return "social.send_friend_request"
}

// SendFriendRequestResult contains the created request.
type SendFriendRequestResult struct {
	Request *model.FriendRequest
}

// SendFriendRequestHandler handles the SendFriendRequest command.
type SendFriendRequestHandler interface {
	Handle(ctx context.Context, cmd SendFriendRequest) (SendFriendRequestResult, error)
}
