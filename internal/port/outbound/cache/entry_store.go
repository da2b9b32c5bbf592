package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one stored cache record: the last-known-good payload and
// when it was fetched from upstream. Whether the entry is servable is a
// judgment made by the freshness service at read time; the store itself
// never expires entries.
type Entry struct {
	Payload     json.RawMessage `json:"payload"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Age returns the elapsed time since the entry was fetched.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.LastUpdated)
}

// EntryStore defines the interface for durable cache entry storage,
// shared by every resource kind. Keys come from model.CacheKey and are
// unique across kinds.
type EntryStore interface {
	// Get retrieves an entry. Returns nil if not found (cache miss).
	Get(ctx context.Context, key string) (*Entry, error)

	// Put stores an entry, overwriting any previous value for the key.
	Put(ctx context.Context, key string, entry Entry) error
}
