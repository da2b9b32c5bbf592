package command

import (
	"context"
)

// RemoveFriend deletes the accepted edge between the pair, whichever
// direction it was sent in. This is a hard delete: a later request
// between the same pair starts a fresh pending edge.
type RemoveFriend struct {
	UserID  string
	OtherID string
}

func (c RemoveFriend) CommandName() string {
	return "social.remove_friend"
}

// RemoveFriendResult reports the removed counterpart.
type RemoveFriendResult struct {
	RemovedID string
}

// RemoveFriendHandler handles the RemoveFriend command.
type RemoveFriendHandler interface {
	Handle(ctx context.Context, cmd RemoveFriend) (RemoveFriendResult, error)
}
