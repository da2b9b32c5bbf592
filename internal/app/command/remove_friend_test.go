package command

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
)

func TestRemoveFriendHandler(t *testing.T) {
	ctx := context.Background()

	befriend := func(t *testing.T, repo *memRequestRepo, requesterID, recipientID string) {
		t.Helper()
		request, err := model.NewFriendRequest(requesterID, recipientID)
		if err != nil {
			t.Fatalf("NewFriendRequest() error = %v", err)
		}
		if err := request.Accept(); err != nil {
			t.Fatalf("Accept() error = %v", err)
		}
		if err := repo.Create(ctx, request); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("removes friendship from either side", func(t *testing.T) {
		repo := newMemRequestRepo()
		pub := newCapturePublisher()
		handler := NewRemoveFriendHandler(repo, pub, testLogger())
		befriend(t, repo, "alice", "bob")

		// Bob removes, even though Alice sent the original request.
		result, err := handler.Handle(ctx, command.RemoveFriend{UserID: "bob", OtherID: "alice"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if result.RemovedID != "alice" {
			t.Errorf("RemovedID = %q, want alice", result.RemovedID)
		}

		friends, _ := repo.ExistsAcceptedBetween(ctx, "alice", "bob")
		if friends {
			t.Error("friendship still derivable after removal")
		}
		if repo.count() != 0 {
			t.Errorf("edge count = %d, want 0 after hard delete", repo.count())
		}

		evt := pub.lastPublished()
		if evt == nil || evt.EventType() != event.EventTypeFriendRemoved {
			t.Errorf("published event = %v, want %s", evt, event.EventTypeFriendRemoved)
		}
		d, ok := pub.lastDirect()
		if !ok || d.userID != "alice" {
			t.Errorf("direct delivery target = %v, want alice", d.userID)
		}
	})

	t.Run("removal clears the way for a fresh request", func(t *testing.T) {
		repo := newMemRequestRepo()
		remove := NewRemoveFriendHandler(repo, newCapturePublisher(), testLogger())
		send := NewSendFriendRequestHandler(repo, newCapturePublisher(), testLogger())
		befriend(t, repo, "alice", "bob")

		if _, err := remove.Handle(ctx, command.RemoveFriend{UserID: "alice", OtherID: "bob"}); err != nil {
			t.Fatalf("remove Handle() error = %v", err)
		}

		result, err := send.Handle(ctx, command.SendFriendRequest{RequesterID: "bob", RecipientID: "alice"})
		if err != nil {
			t.Fatalf("send after removal error = %v", err)
		}
		if !result.Request.IsPending() {
			t.Error("new request after removal should be pending")
		}
	})

	t.Run("non-friends cannot be removed", func(t *testing.T) {
		handler := NewRemoveFriendHandler(newMemRequestRepo(), newCapturePublisher(), testLogger())

		_, err := handler.Handle(ctx, command.RemoveFriend{UserID: "alice", OtherID: "bob"})
		if !errors.Is(err, domainerror.ErrFriendshipNotFound) {
			t.Errorf("Handle() error = %v, want ErrFriendshipNotFound", err)
		}
	})

	t.Run("pending edge is not a friendship", func(t *testing.T) {
		repo := newMemRequestRepo()
		handler := NewRemoveFriendHandler(repo, newCapturePublisher(), testLogger())
		request, _ := model.NewFriendRequest("alice", "bob")
		if err := repo.Create(ctx, request); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		_, err := handler.Handle(ctx, command.RemoveFriend{UserID: "alice", OtherID: "bob"})
		if !errors.Is(err, domainerror.ErrFriendshipNotFound) {
			t.Errorf("Handle() error = %v, want ErrFriendshipNotFound", err)
		}
		if repo.count() != 1 {
			t.Errorf("pending edge must survive, count = %d", repo.count())
		}
	})
}
