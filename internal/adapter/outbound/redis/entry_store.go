package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riftbook/rift-social/internal/port/outbound/cache"
)

const entryKeyPrefix = "social:upstream:"

// storedEntry is the wire form of a cache entry. The payload stays raw
// so the store never needs to know the resource shape.
type storedEntry struct {
	Payload     json.RawMessage `json:"payload"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// entryStore implements cache.EntryStore on Redis.
//
// Entries carry no Redis TTL. Staleness is a read-time decision made
// against LastUpdated, and an expired entry must stay readable so a
// failed refetch can report the failure instead of a miss.
type entryStore struct {
	client *redis.Client
}

// NewEntryStore creates a new EntryStore.
func NewEntryStore(client *redis.Client) cache.EntryStore {
	return &entryStore{client: client}
}

func (s *entryStore) Get(ctx context.Context, key string) (*cache.Entry, error) {
	data, err := s.client.Get(ctx, entryKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	var stored storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	return &cache.Entry{
		Payload:     stored.Payload,
		LastUpdated: stored.LastUpdated,
	}, nil
}

func (s *entryStore) Put(ctx context.Context, key string, entry cache.Entry) error {
	data, err := json.Marshal(storedEntry{
		Payload:     entry.Payload,
		LastUpdated: entry.LastUpdated,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := s.client.Set(ctx, entryKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

func entryKey(key string) string {
	return entryKeyPrefix + key
}
