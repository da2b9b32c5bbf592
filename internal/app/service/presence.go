package service

import (
	"context"
	"sort"
	"sync"
)

// FriendChecker answers whether two users are friends (an accepted
// request edge exists between them in either direction).
type FriendChecker interface {
	ExistsAcceptedBetween(ctx context.Context, userID, otherID string) (bool, error)
}

// PresenceListener is notified when a user's connected state actually
// flips. Used to publish presence events; repeated connects while
// already online produce no notifications.
type PresenceListener func(userID string, online bool)

// PresenceRegistry is the process-wide set of currently-connected user
// ids. Membership is transient and rebuilt from scratch on restart.
// "Online" is boolean, not a count: simultaneous connections from the
// same user collapse into a single membership.
//
// The registry is an explicitly-owned injected instance, safe for
// concurrent use without external locking.
type PresenceRegistry struct {
	friends  FriendChecker
	listener PresenceListener

	mu     sync.RWMutex
	online map[string]struct{}
}

// NewPresenceRegistry creates a PresenceRegistry gated by the given
// friend checker. The listener may be nil.
func NewPresenceRegistry(friends FriendChecker, listener PresenceListener) *PresenceRegistry {
	return &PresenceRegistry{
		friends:  friends,
		listener: listener,
		online:   make(map[string]struct{}),
	}
}

// MarkOnline records the user as connected. Idempotent.
func (r *PresenceRegistry) MarkOnline(userID string) {
	if userID == "" {
		return
	}

	r.mu.Lock()
	_, already := r.online[userID]
	r.online[userID] = struct{}{}
	r.mu.Unlock()

	if !already && r.listener != nil {
		r.listener(userID, true)
	}
}

// MarkOffline removes the user from the connected set. Idempotent.
func (r *PresenceRegistry) MarkOffline(userID string) {
	r.mu.Lock()
	_, present := r.online[userID]
	delete(r.online, userID)
	r.mu.Unlock()

	if present && r.listener != nil {
		r.listener(userID, false)
	}
}

// IsOnline reports raw membership. Internal use only: every externally
// visible answer must go through IsOnlineVisibleTo.
func (r *PresenceRegistry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.online[userID]
	return ok
}

// IsOnlineVisibleTo reports the target's presence as seen by the
// requester. Presence is privacy-sensitive: unless the target is a
// friend of the requester, the answer is false regardless of true
// membership.
func (r *PresenceRegistry) IsOnlineVisibleTo(ctx context.Context, requesterID, targetID string) (bool, error) {
	if requesterID == "" || targetID == "" {
		return false, nil
	}
	if requesterID == targetID {
		return r.IsOnline(targetID), nil
	}

	friends, err := r.friends.ExistsAcceptedBetween(ctx, requesterID, targetID)
	if err != nil {
		return false, err
	}
	if !friends {
		return false, nil
	}

	return r.IsOnline(targetID), nil
}

// Snapshot returns the currently-connected user ids, sorted. The
// health endpoint reports the count.
func (r *PresenceRegistry) Snapshot() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.online))
	for id := range r.online {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
