package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riftbook/rift-social/internal/app/service"
	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/outbound/cache"
)

type memEntryStore struct {
	mu      sync.Mutex
	entries map[string]cache.Entry
}

func newMemEntryStore() *memEntryStore {
	return &memEntryStore{entries: make(map[string]cache.Entry)}
}

func (s *memEntryStore) Get(_ context.Context, key string) (*cache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *memEntryStore) Put(_ context.Context, key string, entry cache.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

func TestRefreshProfileHandler(t *testing.T) {
	ctx := context.Background()

	newHandler := func(t *testing.T, fetchErr error) (command.RefreshProfileHandler, *int) {
		t.Helper()
		calls := 0
		fetch := func(_ context.Context, key model.ProfileKey) (*model.Profile, error) {
			calls++
			if fetchErr != nil {
				return nil, fetchErr
			}
			return &model.Profile{GameName: key.GameName, TagLine: key.TagLine, Region: key.Region}, nil
		}
		profiles, err := service.NewFreshness(newMemEntryStore(), fetch, service.FreshnessConfig{
			StalenessWindow: 5 * time.Minute,
			CooldownWindow:  30 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewFreshness() error = %v", err)
		}
		return NewRefreshProfileHandler(profiles), &calls
	}

	t.Run("forces an upstream fetch", func(t *testing.T) {
		handler, calls := newHandler(t, nil)

		result, err := handler.Handle(ctx, command.RefreshProfile{Region: "euw", GameName: "Faker", TagLine: "KR1"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if *calls != 1 {
			t.Errorf("upstream calls = %d, want 1", *calls)
		}
		if result.Profile.GameName != "Faker" {
			t.Errorf("profile name = %q, want Faker", result.Profile.GameName)
		}
		if result.FetchedAt.IsZero() {
			t.Error("FetchedAt is zero")
		}
	})

	t.Run("second refresh inside the cooldown is throttled", func(t *testing.T) {
		handler, calls := newHandler(t, nil)
		cmd := command.RefreshProfile{Region: "euw", GameName: "Faker", TagLine: "KR1"}

		if _, err := handler.Handle(ctx, cmd); err != nil {
			t.Fatalf("first Handle() error = %v", err)
		}
		_, err := handler.Handle(ctx, cmd)
		if !errors.Is(err, domainerror.ErrRefreshThrottled) {
			t.Errorf("second Handle() error = %v, want ErrRefreshThrottled", err)
		}
		if *calls != 1 {
			t.Errorf("upstream calls = %d, want 1 (throttled refresh must not fetch)", *calls)
		}
	})

	t.Run("rejects incomplete identity", func(t *testing.T) {
		handler, calls := newHandler(t, nil)

		_, err := handler.Handle(ctx, command.RefreshProfile{Region: "", GameName: "Faker", TagLine: "KR1"})
		if !errors.Is(err, domainerror.ErrRegionRequired) {
			t.Errorf("Handle() error = %v, want ErrRegionRequired", err)
		}
		if *calls != 0 {
			t.Errorf("upstream calls = %d, want 0", *calls)
		}
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		handler, _ := newHandler(t, domainerror.ErrUpstreamUnavailable)

		_, err := handler.Handle(ctx, command.RefreshProfile{Region: "euw", GameName: "Faker", TagLine: "KR1"})
		if !errors.Is(err, domainerror.ErrUpstreamUnavailable) {
			t.Errorf("Handle() error = %v, want ErrUpstreamUnavailable", err)
		}
	})
}
