package messaging

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/event"
)

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// Publish publishes a single event to its topic.
	Publish(ctx context.Context, evt event.Event) error

	// PublishDirect delivers an event to one user's private channel.
	// Delivery is best-effort: an error means the publish failed, not
	// that the user missed the message forever (history remains the
	// source of truth).
	PublishDirect(ctx context.Context, userID string, evt event.Event) error
}

// DirectSubscriber attaches a consumer to one user's private channel.
// Used by the realtime facade to bridge delivery to a client stream.
type DirectSubscriber interface {
	// SubscribeDirect invokes handler for every payload delivered to
	// the user's private channel until the returned cancel function is
	// called.
	SubscribeDirect(userID string, handler func(data []byte)) (cancel func(), err error)
}

// Topic names for social events.
const (
	TopicFriendEvents   = "social.friend"
	TopicChatEvents     = "social.chat"
	TopicPresenceEvents = "social.presence"
)

// TopicForEvent returns the appropriate topic for an event type.
func TopicForEvent(evt event.Event) string {
	switch evt.AggregateType() {
	case event.AggregateTypeFriendRequest:
		return TopicFriendEvents
	case event.AggregateTypeChatMessage:
		return TopicChatEvents
	case event.AggregateTypePresence:
		return TopicPresenceEvents
	default:
		return TopicFriendEvents
	}
}
