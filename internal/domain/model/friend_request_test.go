package model_test

import (
	"testing"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
)

func TestNewFriendRequest(t *testing.T) {
	t.Run("creates pending request", func(t *testing.T) {
		req, err := model.NewFriendRequest("alice", "bob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.RequesterID() != "alice" {
			t.Errorf("requester mismatch: got %s", req.RequesterID())
		}
		if req.RecipientID() != "bob" {
			t.Errorf("recipient mismatch: got %s", req.RecipientID())
		}
		if req.Status() != model.FriendRequestStatusPending {
			t.Errorf("expected status pending, got %s", req.Status())
		}
		if !req.IsPending() {
			t.Error("new request should be pending")
		}
		if req.CreatedAt().IsZero() {
			t.Error("CreatedAt should be set")
		}
		if req.UpdatedAt().IsZero() {
			t.Error("UpdatedAt should be set")
		}
	})

	t.Run("rejects self request", func(t *testing.T) {
		_, err := model.NewFriendRequest("alice", "alice")
		if err != domainerror.ErrSelfRequest {
			t.Errorf("expected ErrSelfRequest, got: %v", err)
		}
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		if _, err := model.NewFriendRequest("", "bob"); err != domainerror.ErrUserIDRequired {
			t.Errorf("expected ErrUserIDRequired, got: %v", err)
		}
		if _, err := model.NewFriendRequest("alice", ""); err != domainerror.ErrUserIDRequired {
			t.Errorf("expected ErrUserIDRequired, got: %v", err)
		}
	})
}

func TestFriendRequest_Accept(t *testing.T) {
	t.Run("accepts pending request", func(t *testing.T) {
		req := mustNewRequest(t, "alice", "bob")

		if err := req.Accept(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status() != model.FriendRequestStatusAccepted {
			t.Errorf("expected accepted, got %s", req.Status())
		}
		if !req.IsAccepted() {
			t.Error("IsAccepted should be true")
		}
	})

	t.Run("rejects double resolve", func(t *testing.T) {
		req := mustNewRequest(t, "alice", "bob")
		if err := req.Accept(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := req.Accept(); err != domainerror.ErrAlreadyResolved {
			t.Errorf("expected ErrAlreadyResolved, got: %v", err)
		}
		if err := req.Reject(); err != domainerror.ErrAlreadyResolved {
			t.Errorf("expected ErrAlreadyResolved, got: %v", err)
		}
	})
}

func TestFriendRequest_Reject(t *testing.T) {
	req := mustNewRequest(t, "alice", "bob")

	if err := req.Reject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status() != model.FriendRequestStatusRejected {
		t.Errorf("expected rejected, got %s", req.Status())
	}
	if err := req.Accept(); err != domainerror.ErrAlreadyResolved {
		t.Errorf("rejected edge is terminal, got: %v", err)
	}
}

func TestFriendRequest_CounterpartOf(t *testing.T) {
	req := mustNewRequest(t, "alice", "bob")

	if got := req.CounterpartOf("alice"); got != "bob" {
		t.Errorf("counterpart of alice: got %s", got)
	}
	if got := req.CounterpartOf("bob"); got != "alice" {
		t.Errorf("counterpart of bob: got %s", got)
	}
	if !req.Touches("alice") || !req.Touches("bob") {
		t.Error("request should touch both ends")
	}
	if req.Touches("carol") {
		t.Error("request should not touch carol")
	}
}

func mustNewRequest(t *testing.T, requester, recipient string) *model.FriendRequest {
	t.Helper()
	req, err := model.NewFriendRequest(requester, recipient)
	if err != nil {
		t.Fatalf("failed to create friend request: %v", err)
	}
	return req
}
