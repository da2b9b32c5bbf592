package query

import (
	"context"
)

// IsOnline reports the target's presence as seen by the requester.
// Presence is privacy-gated: unless the target is a friend of the
// requester the answer is always false, regardless of true presence.
type IsOnline struct {
	RequesterID string
	TargetID    string
}

func (q IsOnline) QueryName() string {
	return "social.is_online"
}

// IsOnlineResult contains the gated presence answer.
type IsOnlineResult struct {
	Online bool
}

// IsOnlineHandler handles the IsOnline query.
type IsOnlineHandler interface {
	Handle(ctx context.Context, qry IsOnline) (IsOnlineResult, error)
}
