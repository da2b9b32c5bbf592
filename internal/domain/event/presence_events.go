package event

// PresenceChanged is emitted when a user's connected state actually
// flips. Repeated connects while already online do not produce events.
type PresenceChanged struct {
	BaseEvent
	UserID string `json:"user_id"`
	Online bool   `json:"online"`
}

// NewPresenceChanged creates a new PresenceChanged event.
func NewPresenceChanged(userID string, online bool) PresenceChanged {
	eventType := EventTypePresenceOffline
	if online {
		eventType = EventTypePresenceOnline
	}
	return PresenceChanged{
		BaseEvent: NewBaseEvent(eventType, userID, AggregateTypePresence),
		UserID:    userID,
		Online:    online,
	}
}
