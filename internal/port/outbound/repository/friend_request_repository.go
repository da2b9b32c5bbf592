package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// FriendRequestRepository defines the interface for friend request
// persistence. Friendship itself is never stored: it is derived from
// accepted edges in either direction, and the queries here are the only
// sanctioned way to evaluate that derivation.
type FriendRequestRepository interface {
	// Create persists a new request. Returns ErrDuplicate if a pending
	// edge already exists for the same ordered pair; the uniqueness
	// check and the insert must be atomic.
	Create(ctx context.Context, request *model.FriendRequest) error

	// Update persists a status transition for an existing request.
	Update(ctx context.Context, request *model.FriendRequest) error

	// FindLatestByPair retrieves the most recently created edge for the
	// exact ordered pair, whatever its status. A pair can accumulate
	// terminal edges over time (reject, re-send); responders always act
	// on the latest one. Returns ErrNotFound if no edge exists.
	FindLatestByPair(ctx context.Context, requesterID, recipientID string) (*model.FriendRequest, error)

	// FindAcceptedBetween retrieves the accepted edge between the
	// unordered pair, whichever direction it was sent in.
	// Returns ErrNotFound if the two users are not friends.
	FindAcceptedBetween(ctx context.Context, userID, otherID string) (*model.FriendRequest, error)

	// ExistsAcceptedBetween reports whether an accepted edge exists
	// between the unordered pair.
	ExistsAcceptedBetween(ctx context.Context, userID, otherID string) (bool, error)

	// ListPendingByRecipient returns pending requests addressed to the
	// user, oldest first.
	ListPendingByRecipient(ctx context.Context, userID string) ([]*model.FriendRequest, error)

	// ListPendingByRequester returns pending requests sent by the
	// user, oldest first.
	ListPendingByRequester(ctx context.Context, userID string) ([]*model.FriendRequest, error)

	// ListAcceptedTouching returns all accepted edges with the user on
	// either end.
	ListAcceptedTouching(ctx context.Context, userID string) ([]*model.FriendRequest, error)

	// Delete removes an edge entirely. Used for friend removal; a later
	// request between the same pair starts a fresh pending edge.
	Delete(ctx context.Context, id uuid.UUID) error
}
