package upstream

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// Upstream listing limits. The provider enforces an absolute cap on the
// total number of retrievable match ids per player, and a maximum page
// size per request.
const (
	MaxMatchIDs      = 100
	MaxMatchPageSize = 20
)

// Client defines the interface to the game-data provider. Calls are
// synchronous HTTP lookups; failures surface as the domain upstream
// error kinds (unavailable, not found, restricted, rate limited) and
// are never retried at this layer.
type Client interface {
	// FetchProfile resolves a player profile by riot id within a region.
	FetchProfile(ctx context.Context, region, gameName, tagLine string) (*model.Profile, error)

	// FetchTopMasteries returns the player's top champion masteries,
	// highest points first, at most count entries.
	FetchTopMasteries(ctx context.Context, region, puuid string, count int) ([]model.ChampionMastery, error)

	// FetchMatchIDsPage returns one page of the player's match ids,
	// most recent first.
	FetchMatchIDsPage(ctx context.Context, region, puuid string, page, size int) ([]string, error)

	// FetchMatch retrieves the detail of one finished match.
	FetchMatch(ctx context.Context, region, matchID string) (*model.Match, error)

	// FetchTimeline retrieves the timeline of one finished match.
	FetchTimeline(ctx context.Context, region, matchID string) (*model.MatchTimeline, error)
}
