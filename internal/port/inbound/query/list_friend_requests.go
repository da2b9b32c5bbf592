package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// ListIncomingRequests returns pending requests addressed to the user,
// oldest first.
type ListIncomingRequests struct {
	UserID string
}

func (q ListIncomingRequests) QueryName() string {
	return "social.list_incoming_requests"
}

// ListIncomingRequestsResult contains the pending requests.
type ListIncomingRequestsResult struct {
	Requests []*model.FriendRequest
}

// ListIncomingRequestsHandler handles the ListIncomingRequests query.
type ListIncomingRequestsHandler interface {
	Handle(ctx context.Context, qry ListIncomingRequests) (ListIncomingRequestsResult, error)
}

// ListOutgoingRequests returns pending requests sent by the user,
// oldest first.
type ListOutgoingRequests struct {
	UserID string
}

func (q ListOutgoingRequests) QueryName() string {
	return "social.list_outgoing_requests"
}

// ListOutgoingRequestsResult contains the pending requests.
type ListOutgoingRequestsResult struct {
	Requests []*model.FriendRequest
}

// ListOutgoingRequestsHandler handles the ListOutgoingRequests query.
type ListOutgoingRequestsHandler interface {
	Handle(ctx context.Context, qry ListOutgoingRequests) (ListOutgoingRequestsResult, error)
}
