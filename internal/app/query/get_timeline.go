package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// getTimelineHandler implements query.GetTimelineHandler.
type getTimelineHandler struct {
	timelines *service.Immutable[model.TimelineKey, *model.MatchTimeline]
}

// NewGetTimelineHandler creates a new GetTimelineHandler.
func NewGetTimelineHandler(
	timelines *service.Immutable[model.TimelineKey, *model.MatchTimeline],
) query.GetTimelineHandler {
	return &getTimelineHandler{
		timelines: timelines,
	}
}

func (h *getTimelineHandler) Handle(ctx context.Context, qry query.GetTimeline) (query.GetTimelineResult, error) {
	key := model.TimelineKey{Region: qry.Region, MatchID: qry.MatchID}
	if err := key.Validate(); err != nil {
		return query.GetTimelineResult{}, err
	}

	timeline, err := h.timelines.Get(ctx, key)
	if err != nil {
		return query.GetTimelineResult{}, err
	}

	return query.GetTimelineResult{Timeline: timeline}, nil
}
