package query

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

func TestListFriendsHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("derives counterparts from both directions", func(t *testing.T) {
		repo := newMemRequestRepo(
			acceptedEdge("alice", "bob"),  // alice sent
			acceptedEdge("carol", "alice"), // alice received
			acceptedEdge("bob", "carol"),  // does not touch alice
			pendingEdge("dave", "alice"),  // pending, not a friend
		)
		handler := NewListFriendsHandler(repo)

		result, err := handler.Handle(ctx, query.ListFriends{UserID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.FriendIDs) != 2 {
			t.Fatalf("len(FriendIDs) = %d, want 2: %v", len(result.FriendIDs), result.FriendIDs)
		}
		seen := map[string]bool{}
		for _, id := range result.FriendIDs {
			seen[id] = true
		}
		if !seen["bob"] || !seen["carol"] {
			t.Errorf("FriendIDs = %v, want bob and carol", result.FriendIDs)
		}
	})

	t.Run("no friends is an empty listing", func(t *testing.T) {
		handler := NewListFriendsHandler(newMemRequestRepo())

		result, err := handler.Handle(ctx, query.ListFriends{UserID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.FriendIDs) != 0 {
			t.Errorf("len(FriendIDs) = %d, want 0", len(result.FriendIDs))
		}
	})

	t.Run("requires a user id", func(t *testing.T) {
		handler := NewListFriendsHandler(newMemRequestRepo())

		_, err := handler.Handle(ctx, query.ListFriends{})
		if !errors.Is(err, domainerror.ErrUserIDRequired) {
			t.Errorf("Handle() error = %v, want ErrUserIDRequired", err)
		}
	})
}

func TestListRequestsHandlers(t *testing.T) {
	ctx := context.Background()

	repo := newMemRequestRepo(
		pendingEdge("bob", "alice"),
		pendingEdge("carol", "alice"),
		pendingEdge("alice", "dave"),
		acceptedEdge("erin", "alice"),
	)

	t.Run("incoming lists pending addressed to the user", func(t *testing.T) {
		handler := NewListIncomingRequestsHandler(repo)

		result, err := handler.Handle(ctx, query.ListIncomingRequests{UserID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.Requests) != 2 {
			t.Fatalf("len(Requests) = %d, want 2", len(result.Requests))
		}
		// Oldest first.
		if result.Requests[0].RequesterID() != "bob" || result.Requests[1].RequesterID() != "carol" {
			t.Errorf("requesters = %q, %q, want bob, carol",
				result.Requests[0].RequesterID(), result.Requests[1].RequesterID())
		}
	})

	t.Run("outgoing lists pending sent by the user", func(t *testing.T) {
		handler := NewListOutgoingRequestsHandler(repo)

		result, err := handler.Handle(ctx, query.ListOutgoingRequests{UserID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.Requests) != 1 || result.Requests[0].RecipientID() != "dave" {
			t.Errorf("Requests = %v, want single request to dave", result.Requests)
		}
	})

	t.Run("resolved edges never appear", func(t *testing.T) {
		incoming := NewListIncomingRequestsHandler(repo)

		result, err := incoming.Handle(ctx, query.ListIncomingRequests{UserID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		for _, r := range result.Requests {
			if r.RequesterID() == "erin" {
				t.Error("accepted edge listed as a pending request")
			}
		}
	})
}
