package command

import (
	"context"
	"time"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// RefreshProfile forces an upstream re-fetch of a profile regardless of
// staleness. Subject to the refresh cooldown: a refresh issued too soon
// after the last fetch fails with RefreshThrottled.
type RefreshProfile struct {
	Region   string
	GameName string
	TagLine  string
}

func (c RefreshProfile) CommandName() string {
	return "social.refresh_profile"
}

// RefreshProfileResult contains the freshly fetched profile.
type RefreshProfileResult struct {
	Profile   *model.Profile
	FetchedAt time.Time
}

// RefreshProfileHandler handles the RefreshProfile command.
type RefreshProfileHandler interface {
	Handle(ctx context.Context, cmd RefreshProfile) (RefreshProfileResult, error)
}
