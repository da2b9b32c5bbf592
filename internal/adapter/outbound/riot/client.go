package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/upstream"
)

const (
	apiKeyHeader   = "X-Riot-Token"
	defaultBaseURL = "https://%s.api.riotgames.com"
	defaultTimeout = 10 * time.Second
)

// Config holds the upstream client settings. BaseURL may contain a
// single %s placeholder for the region routing value; without one the
// URL is used as-is, which is what the tests do.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// client implements upstream.Client against the provider's HTTP API.
type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a new upstream client.
func NewClient(cfg Config) upstream.Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (c *client) FetchProfile(ctx context.Context, region, gameName, tagLine string) (*model.Profile, error) {
	var account accountDTO
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))
	if err := c.get(ctx, region, path, &account); err != nil {
		return nil, err
	}

	var summoner summonerDTO
	path = "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(account.PUUID)
	if err := c.get(ctx, region, path, &summoner); err != nil {
		return nil, err
	}

	profile := &model.Profile{
		PUUID:         account.PUUID,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		Region:        region,
		SummonerLevel: summoner.SummonerLevel,
		ProfileIconID: summoner.ProfileIconID,
	}

	// Ranked standing is optional: an unranked player simply has no
	// league entries, which is not an error.
	var entries []leagueEntryDTO
	path = "/lol/league/v4/entries/by-puuid/" + url.PathEscape(account.PUUID)
	if err := c.get(ctx, region, path, &entries); err == nil {
		for _, entry := range entries {
			if entry.QueueType == "RANKED_SOLO_5x5" {
				profile.Tier = entry.Tier
				profile.Rank = entry.Rank
				profile.LeaguePoints = entry.LeaguePoints
				profile.Wins = entry.Wins
				profile.Losses = entry.Losses
				break
			}
		}
	}

	return profile, nil
}

func (c *client) FetchTopMasteries(ctx context.Context, region, puuid string, count int) ([]model.ChampionMastery, error) {
	var dtos []masteryDTO
	path := fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d",
		url.PathEscape(puuid), count)
	if err := c.get(ctx, region, path, &dtos); err != nil {
		return nil, err
	}

	masteries := make([]model.ChampionMastery, 0, len(dtos))
	for _, dto := range dtos {
		masteries = append(masteries, dto.toModel())
	}
	return masteries, nil
}

func (c *client) FetchMatchIDsPage(ctx context.Context, region, puuid string, page, size int) ([]string, error) {
	var ids []string
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		url.PathEscape(puuid), page*size, size)
	if err := c.get(ctx, region, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *client) FetchMatch(ctx context.Context, region, matchID string) (*model.Match, error) {
	var dto matchDTO
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	if err := c.get(ctx, region, path, &dto); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *client) FetchTimeline(ctx context.Context, region, matchID string) (*model.MatchTimeline, error) {
	var dto timelineDTO
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID) + "/timeline"
	if err := c.get(ctx, region, path, &dto); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *client) get(ctx context.Context, region, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(region)+path, nil)
	if err != nil {
		return domainerror.ErrUpstreamUnavailable.WithCause(err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return domainerror.ErrUpstreamUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerror.ErrUpstreamUnavailable.WithCause(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *client) endpoint(region string) string {
	if strings.Contains(c.baseURL, "%s") {
		return fmt.Sprintf(c.baseURL, region)
	}
	return c.baseURL
}

// statusError maps a non-2xx response to its domain error. Rate limits
// and server failures are both reported, distinctly, without retrying.
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return domainerror.ErrUpstreamNotFound
	case code == http.StatusForbidden:
		return domainerror.ErrRestricted
	case code == http.StatusTooManyRequests:
		return domainerror.ErrUpstreamRateLimited
	default:
		return domainerror.ErrUpstreamUnavailable.WithMessagef("upstream returned status %d", code)
	}
}
