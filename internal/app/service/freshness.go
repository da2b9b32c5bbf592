package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/cache"
)

// FetchFunc loads the current value for a key from the upstream
// provider. Errors must carry the domain upstream error kinds.
type FetchFunc[K model.CacheKey, V any] func(ctx context.Context, key K) (V, error)

// FreshnessConfig holds the two serving windows of a mutable resource
// kind. The cooldown must be strictly shorter than the staleness
// window, so a user-triggered refresh is always more restrictive than a
// lazy re-fetch.
type FreshnessConfig struct {
	// StalenessWindow is how long a cached value is served without
	// contacting upstream.
	StalenessWindow time.Duration

	// CooldownWindow is how soon after a fetch a forced refresh is
	// rejected with RefreshThrottled.
	CooldownWindow time.Duration
}

func (c FreshnessConfig) validate() error {
	if c.StalenessWindow <= 0 {
		return fmt.Errorf("staleness window must be positive, got %s", c.StalenessWindow)
	}
	if c.CooldownWindow <= 0 {
		return fmt.Errorf("cooldown window must be positive, got %s", c.CooldownWindow)
	}
	if c.CooldownWindow >= c.StalenessWindow {
		return fmt.Errorf("cooldown window %s must be shorter than staleness window %s",
			c.CooldownWindow, c.StalenessWindow)
	}
	return nil
}

// Freshness is the cache-aside service for one mutable resource kind.
// Reads inside the staleness window never contact upstream; expired
// reads re-fetch and overwrite the entry in place. Entries are never
// evicted from the store, only judged stale at serving time.
//
// Concurrent callers racing on the same expired key are collapsed into
// a single upstream fetch.
type Freshness[K model.CacheKey, V any] struct {
	store cache.EntryStore
	fetch FetchFunc[K, V]
	cfg   FreshnessConfig
	now   func() time.Time
	group singleflight.Group
}

// FreshnessOption configures a Freshness service.
type FreshnessOption[K model.CacheKey, V any] func(*Freshness[K, V])

// WithClock overrides the time source. Used by tests.
func WithClock[K model.CacheKey, V any](now func() time.Time) FreshnessOption[K, V] {
	return func(f *Freshness[K, V]) {
		f.now = now
	}
}

// NewFreshness creates a Freshness service for one resource kind.
func NewFreshness[K model.CacheKey, V any](
	store cache.EntryStore,
	fetch FetchFunc[K, V],
	cfg FreshnessConfig,
	opts ...FreshnessOption[K, V],
) (*Freshness[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	f := &Freshness[K, V]{
		store: store,
		fetch: fetch,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

type fetched[V any] struct {
	value V
	at    time.Time
}

// Get returns the cached value if it is younger than the staleness
// window, otherwise fetches from upstream and overwrites the entry.
// A fetch failure propagates as-is; the stale value is never silently
// served on failure.
func (f *Freshness[K, V]) Get(ctx context.Context, key K) (V, time.Time, error) {
	var zero V

	entry, err := f.store.Get(ctx, key.CacheKey())
	if err != nil {
		return zero, time.Time{}, fmt.Errorf("cache read for %s: %w", key.CacheKey(), err)
	}

	if entry != nil && entry.Age(f.now()) < f.cfg.StalenessWindow {
		value, err := decodeEntry[V](entry)
		if err == nil {
			return value, entry.LastUpdated, nil
		}
		// Undecodable entry is treated as expired and re-fetched.
	}

	return f.refetch(ctx, key)
}

// ForceRefresh always fetches from upstream regardless of staleness,
// unless the last fetch happened within the cooldown window, in which
// case it fails with RefreshThrottled and leaves the entry untouched.
func (f *Freshness[K, V]) ForceRefresh(ctx context.Context, key K) (V, time.Time, error) {
	var zero V

	entry, err := f.store.Get(ctx, key.CacheKey())
	if err != nil {
		return zero, time.Time{}, fmt.Errorf("cache read for %s: %w", key.CacheKey(), err)
	}

	if entry != nil && entry.Age(f.now()) < f.cfg.CooldownWindow {
		return zero, time.Time{}, domainerror.ErrRefreshThrottled
	}

	return f.refetch(ctx, key)
}

// refetch performs the upstream fetch and overwrite, deduplicated so at
// most one fetch per key is in flight at a time.
func (f *Freshness[K, V]) refetch(ctx context.Context, key K) (V, time.Time, error) {
	var zero V

	result, err, _ := f.group.Do(key.CacheKey(), func() (any, error) {
		value, err := f.fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		at := f.now()
		payload, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode cache entry for %s: %w", key.CacheKey(), err)
		}
		if err := f.store.Put(ctx, key.CacheKey(), cache.Entry{
			Payload:     payload,
			LastUpdated: at,
		}); err != nil {
			return nil, fmt.Errorf("cache write for %s: %w", key.CacheKey(), err)
		}

		return fetched[V]{value: value, at: at}, nil
	})
	if err != nil {
		return zero, time.Time{}, err
	}

	fr := result.(fetched[V])
	return fr.value, fr.at, nil
}

func decodeEntry[V any](entry *cache.Entry) (V, error) {
	var value V
	if err := json.Unmarshal(entry.Payload, &value); err != nil {
		return value, err
	}
	return value, nil
}
