package event

// FriendRequestSent is emitted when a new friend request is created.
type FriendRequestSent struct {
	BaseEvent
	RequestID   string `json:"request_id"`
	RequesterID string `json:"requester_id"`
	RecipientID string `json:"recipient_id"`
}

// NewFriendRequestSent creates a new FriendRequestSent event.
func NewFriendRequestSent(requestID, requesterID, recipientID string) FriendRequestSent {
	return FriendRequestSent{
		BaseEvent:   NewBaseEvent(EventTypeFriendRequestSent, requestID, AggregateTypeFriendRequest),
		RequestID:   requestID,
		RequesterID: requesterID,
		RecipientID: recipientID,
	}
}

// FriendRequestResolved is emitted when the recipient accepts or
// rejects a pending request.
type FriendRequestResolved struct {
	BaseEvent
	RequestID   string `json:"request_id"`
	RequesterID string `json:"requester_id"`
	RecipientID string `json:"recipient_id"`
	Accepted    bool   `json:"accepted"`
}

// NewFriendRequestResolved creates a new FriendRequestResolved event.
func NewFriendRequestResolved(requestID, requesterID, recipientID string, accepted bool) FriendRequestResolved {
	eventType := EventTypeFriendRequestRejected
	if accepted {
		eventType = EventTypeFriendRequestAccepted
	}
	return FriendRequestResolved{
		BaseEvent:   NewBaseEvent(eventType, requestID, AggregateTypeFriendRequest),
		RequestID:   requestID,
		RequesterID: requesterID,
		RecipientID: recipientID,
		Accepted:    accepted,
	}
}

// FriendRemoved is emitted when an accepted edge is deleted by either side.
type FriendRemoved struct {
	BaseEvent
	RemoverID string `json:"remover_id"`
	RemovedID string `json:"removed_id"`
}

// NewFriendRemoved creates a new FriendRemoved event.
func NewFriendRemoved(requestID, removerID, removedID string) FriendRemoved {
	return FriendRemoved{
		BaseEvent: NewBaseEvent(EventTypeFriendRemoved, requestID, AggregateTypeFriendRequest),
		RemoverID: removerID,
		RemovedID: removedID,
	}
}
