package query

import (
	"context"
	"time"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// GetProfile reads a player profile through the freshness cache: the
// cached value is served within the staleness window, otherwise the
// profile is re-fetched from upstream.
type GetProfile struct {
	Region   string
	GameName string
	TagLine  string
}

func (q GetProfile) QueryName() string {
	return "social.get_profile"
}

// GetProfileResult contains the profile and when it was last fetched.
type GetProfileResult struct {
	Profile   *model.Profile
	FetchedAt time.Time
}

// GetProfileHandler handles the GetProfile query.
type GetProfileHandler interface {
	Handle(ctx context.Context, qry GetProfile) (GetProfileResult, error)
}
