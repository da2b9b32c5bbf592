package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// GetTimeline reads one match timeline (immutable, cached forever).
type GetTimeline struct {
	Region  string
	MatchID string
}

func (q GetTimeline) QueryName() string {
	return "social.get_timeline"
}

// GetTimelineResult contains the timeline.
type GetTimelineResult struct {
	Timeline *model.MatchTimeline
}

// GetTimelineHandler handles the GetTimeline query.
type GetTimelineHandler interface {
	Handle(ctx context.Context, qry GetTimeline) (GetTimelineResult, error)
}
