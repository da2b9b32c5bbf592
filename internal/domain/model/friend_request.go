package model

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
)

// FriendRequestStatus represents the state of a directed friend request.
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

func (s FriendRequestStatus) String() string {
	return string(s)
}

func (s FriendRequestStatus) IsValid() bool {
	switch s {
	case FriendRequestStatusPending, FriendRequestStatusAccepted, FriendRequestStatusRejected:
		return true
	default:
		return false
	}
}

// FriendRequest is a directed edge between two user identifiers.
// The state machine per edge is pending -> {accepted, rejected};
// accepted edges are additionally deletable, which removes the edge
// entirely rather than introducing a fourth status.
type FriendRequest struct {
	id          uuid.UUID
	requesterID string
	recipientID string
	status      FriendRequestStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFriendRequest creates a new pending FriendRequest.
func NewFriendRequest(requesterID, recipientID string) (*FriendRequest, error) {
	if requesterID == "" || recipientID == "" {
		return nil, domainerror.ErrUserIDRequired
	}
	if requesterID == recipientID {
		return nil, domainerror.ErrSelfRequest
	}

	now := time.Now().UTC()

	return &FriendRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		recipientID: recipientID,
		status:      FriendRequestStatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructFriendRequest creates a FriendRequest from persisted data
// (bypasses validation). Used by the repository when loading rows.
func ReconstructFriendRequest(
	id uuid.UUID,
	requesterID string,
	recipientID string,
	status FriendRequestStatus,
	createdAt time.Time,
	updatedAt time.Time,
) *FriendRequest {
	return &FriendRequest{
		id:          id,
		requesterID: requesterID,
		recipientID: recipientID,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters

func (r *FriendRequest) ID() uuid.UUID               { return r.id }
func (r *FriendRequest) RequesterID() string         { return r.requesterID }
func (r *FriendRequest) RecipientID() string         { return r.recipientID }
func (r *FriendRequest) Status() FriendRequestStatus { return r.status }
func (r *FriendRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *FriendRequest) UpdatedAt() time.Time        { return r.updatedAt }

// Commands

// Accept transitions the request to accepted. Only pending requests can
// be resolved; a resolved edge is terminal.
func (r *FriendRequest) Accept() error {
	if r.status != FriendRequestStatusPending {
		return domainerror.ErrAlreadyResolved
	}
	r.status = FriendRequestStatusAccepted
	r.updatedAt = time.Now().UTC()
	return nil
}

// Reject transitions the request to rejected.
func (r *FriendRequest) Reject() error {
	if r.status != FriendRequestStatusPending {
		return domainerror.ErrAlreadyResolved
	}
	r.status = FriendRequestStatusRejected
	r.updatedAt = time.Now().UTC()
	return nil
}

// Queries

func (r *FriendRequest) IsPending() bool {
	return r.status == FriendRequestStatusPending
}

func (r *FriendRequest) IsAccepted() bool {
	return r.status == FriendRequestStatusAccepted
}

// Touches reports whether the given user is on either end of the edge.
func (r *FriendRequest) Touches(userID string) bool {
	return r.requesterID == userID || r.recipientID == userID
}

// CounterpartOf returns the other end of the edge relative to userID.
func (r *FriendRequest) CounterpartOf(userID string) string {
	if r.requesterID == userID {
		return r.recipientID
	}
	return r.requesterID
}
