package query

import (
	"context"
)

// ListFriends returns the user's friends: the counterpart of every
// accepted edge touching the user in either direction. Pure derivation
// over request edges, no independent storage.
type ListFriends struct {
	UserID string
}

func (q ListFriends) QueryName() string {
	return "social.list_friends"
}

// ListFriendsResult contains the counterpart user ids.
type ListFriendsResult struct {
	FriendIDs []string
}

// ListFriendsHandler handles the ListFriends query.
type ListFriendsHandler interface {
	Handle(ctx context.Context, qry ListFriends) (ListFriendsResult, error)
}
