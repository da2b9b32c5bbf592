package model

import (
	"fmt"
	"strings"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
)

// CacheKey identifies one cached upstream resource instance. Each
// resource kind has its own typed key so different kinds can never
// collide in shared storage.
type CacheKey interface {
	// CacheKey returns the stable storage key, unique across kinds.
	CacheKey() string
}

// ProfileKey identifies a player profile, a mutable resource keyed by
// (region, game name, tag line). Name components are case-insensitive
// upstream, so the key is normalized to lower case.
type ProfileKey struct {
	Region   string
	GameName string
	TagLine  string
}

func (k ProfileKey) CacheKey() string {
	return fmt.Sprintf("profile:%s:%s#%s",
		strings.ToLower(k.Region),
		strings.ToLower(k.GameName),
		strings.ToLower(k.TagLine),
	)
}

func (k ProfileKey) Validate() error {
	if k.Region == "" {
		return domainerror.ErrRegionRequired
	}
	if k.GameName == "" || k.TagLine == "" {
		return domainerror.ErrRiotNameRequired
	}
	return nil
}

// MasteryKey identifies a player's top champion masteries, keyed by
// the player's stable upstream identifier.
type MasteryKey struct {
	Region string
	PUUID  string
}

func (k MasteryKey) CacheKey() string {
	return fmt.Sprintf("mastery:%s:%s", strings.ToLower(k.Region), k.PUUID)
}

func (k MasteryKey) Validate() error {
	if k.Region == "" {
		return domainerror.ErrRegionRequired
	}
	if k.PUUID == "" {
		return domainerror.ErrSubjectIDRequired
	}
	return nil
}

// MatchListKey identifies one page of a player's match-id listing.
type MatchListKey struct {
	Region string
	PUUID  string
	Page   int
	Size   int
}

func (k MatchListKey) CacheKey() string {
	return fmt.Sprintf("matchlist:%s:%s:%d:%d", strings.ToLower(k.Region), k.PUUID, k.Page, k.Size)
}

func (k MatchListKey) Validate() error {
	if k.Region == "" {
		return domainerror.ErrRegionRequired
	}
	if k.PUUID == "" {
		return domainerror.ErrSubjectIDRequired
	}
	if k.Page < 0 || k.Size <= 0 {
		return domainerror.ErrPageInvalid
	}
	return nil
}

// MatchKey identifies a finished match, an immutable resource. The
// match id is globally unique upstream and can never change meaning.
type MatchKey struct {
	Region  string
	MatchID string
}

func (k MatchKey) CacheKey() string {
	return "match:" + k.MatchID
}

func (k MatchKey) Validate() error {
	if k.Region == "" {
		return domainerror.ErrRegionRequired
	}
	if k.MatchID == "" {
		return domainerror.ErrMatchIDRequired
	}
	return nil
}

// TimelineKey identifies a match timeline, immutable like the match.
type TimelineKey struct {
	Region  string
	MatchID string
}

func (k TimelineKey) CacheKey() string {
	return "timeline:" + k.MatchID
}

func (k TimelineKey) Validate() error {
	if k.Region == "" {
		return domainerror.ErrRegionRequired
	}
	if k.MatchID == "" {
		return domainerror.ErrMatchIDRequired
	}
	return nil
}
