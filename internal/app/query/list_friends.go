package query

import (
	"context"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// listFriendsHandler implements query.ListFriendsHandler.
type listFriendsHandler struct {
	requests repository.FriendRequestRepository
}

// NewListFriendsHandler creates a new ListFriendsHandler.
func NewListFriendsHandler(
	requests repository.FriendRequestRepository,
) query.ListFriendsHandler {
	return &listFriendsHandler{
		requests: requests,
	}
}

func (h *listFriendsHandler) Handle(ctx context.Context, qry query.ListFriends) (query.ListFriendsResult, error) {
	if qry.UserID == "" {
		return query.ListFriendsResult{}, domainerror.ErrUserIDRequired
	}

	// Friendship is a derivation over accepted edges, not a table.
	edges, err := h.requests.ListAcceptedTouching(ctx, qry.UserID)
	if err != nil {
		return query.ListFriendsResult{}, err
	}

	friendIDs := make([]string, 0, len(edges))
	for _, edge := range edges {
		friendIDs = append(friendIDs, edge.CounterpartOf(qry.UserID))
	}

	return query.ListFriendsResult{FriendIDs: friendIDs}, nil
}
