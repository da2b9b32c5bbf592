package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventID returns the unique identifier for this event instance.
	EventID() uuid.UUID

	// EventType returns the type name of the event (e.g., "friend.request.sent").
	EventType() string

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// AggregateType returns the type of aggregate (e.g., "friend_request").
	AggregateType() string
}

// BaseEvent provides common fields for all domain events.
type BaseEvent struct {
	eventID       uuid.UUID
	eventType     string
	occurredAt    time.Time
	aggregateID   string
	aggregateType string
}

// NewBaseEvent creates a new BaseEvent.
func NewBaseEvent(eventType string, aggregateID string, aggregateType string) BaseEvent {
	return BaseEvent{
		eventID:       uuid.New(),
		eventType:     eventType,
		occurredAt:    time.Now().UTC(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.eventID }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
func (e BaseEvent) AggregateType() string { return e.aggregateType }

// Aggregate types
const (
	AggregateTypeFriendRequest = "friend_request"
	AggregateTypeChatMessage   = "chat_message"
	AggregateTypePresence      = "presence"
)

// Event types
const (
	// Friend events
	EventTypeFriendRequestSent     = "friend.request.sent"
	EventTypeFriendRequestAccepted = "friend.request.accepted"
	EventTypeFriendRequestRejected = "friend.request.rejected"
	EventTypeFriendRemoved         = "friend.removed"

	// Chat events
	EventTypeChatMessageSent = "chat.message.sent"

	// Presence events
	EventTypePresenceOnline  = "presence.online"
	EventTypePresenceOffline = "presence.offline"
)
