package query

import (
	"context"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// listIncomingRequestsHandler implements query.ListIncomingRequestsHandler.
type listIncomingRequestsHandler struct {
	requests repository.FriendRequestRepository
}

// NewListIncomingRequestsHandler creates a new ListIncomingRequestsHandler.
func NewListIncomingRequestsHandler(
	requests repository.FriendRequestRepository,
) query.ListIncomingRequestsHandler {
	return &listIncomingRequestsHandler{
		requests: requests,
	}
}

func (h *listIncomingRequestsHandler) Handle(ctx context.Context, qry query.ListIncomingRequests) (query.ListIncomingRequestsResult, error) {
	if qry.UserID == "" {
		return query.ListIncomingRequestsResult{}, domainerror.ErrUserIDRequired
	}

	pending, err := h.requests.ListPendingByRecipient(ctx, qry.UserID)
	if err != nil {
		return query.ListIncomingRequestsResult{}, err
	}

	return query.ListIncomingRequestsResult{Requests: pending}, nil
}

// listOutgoingRequestsHandler implements query.ListOutgoingRequestsHandler.
type listOutgoingRequestsHandler struct {
	requests repository.FriendRequestRepository
}

// NewListOutgoingRequestsHandler creates a new ListOutgoingRequestsHandler.
func NewListOutgoingRequestsHandler(
	requests repository.FriendRequestRepository,
) query.ListOutgoingRequestsHandler {
	return &listOutgoingRequestsHandler{
		requests: requests,
	}
}

func (h *listOutgoingRequestsHandler) Handle(ctx context.Context, qry query.ListOutgoingRequests) (query.ListOutgoingRequestsResult, error) {
	if qry.UserID == "" {
		return query.ListOutgoingRequestsResult{}, domainerror.ErrUserIDRequired
	}

	pending, err := h.requests.ListPendingByRequester(ctx, qry.UserID)
	if err != nil {
		return query.ListOutgoingRequestsResult{}, err
	}

	return query.ListOutgoingRequestsResult{Requests: pending}, nil
}
