package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/cache"
)

// Immutable is the cache service for resource kinds whose identity
// guarantees the value can never change (match details, timelines).
// Once fetched, an entry is served forever: no expiry and no forced
// refresh exist for these kinds.
//
// Upstream failures are never cached. In particular a Restricted
// rejection propagates to the caller so list consumers can drop the key,
// and a later call for the same key asks upstream again.
type Immutable[K model.CacheKey, V any] struct {
	store cache.EntryStore
	fetch FetchFunc[K, V]
	group singleflight.Group
}

// NewImmutable creates an Immutable cache service for one resource kind.
func NewImmutable[K model.CacheKey, V any](store cache.EntryStore, fetch FetchFunc[K, V]) *Immutable[K, V] {
	return &Immutable[K, V]{
		store: store,
		fetch: fetch,
	}
}

// Get returns the cached value if present, fetching and caching it
// permanently on first access.
func (s *Immutable[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V

	entry, err := s.store.Get(ctx, key.CacheKey())
	if err != nil {
		return zero, fmt.Errorf("cache read for %s: %w", key.CacheKey(), err)
	}
	if entry != nil {
		value, err := decodeEntry[V](entry)
		if err == nil {
			return value, nil
		}
	}

	result, err, _ := s.group.Do(key.CacheKey(), func() (any, error) {
		value, err := s.fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode cache entry for %s: %w", key.CacheKey(), err)
		}
		if err := s.store.Put(ctx, key.CacheKey(), cache.Entry{
			Payload:     payload,
			LastUpdated: time.Now().UTC(),
		}); err != nil {
			return nil, fmt.Errorf("cache write for %s: %w", key.CacheKey(), err)
		}

		return value, nil
	})
	if err != nil {
		return zero, err
	}

	return result.(V), nil
}
