package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// getProfileHandler implements query.GetProfileHandler.
type getProfileHandler struct {
	profiles *service.Freshness[model.ProfileKey, *model.Profile]
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(
	profiles *service.Freshness[model.ProfileKey, *model.Profile],
) query.GetProfileHandler {
	return &getProfileHandler{
		profiles: profiles,
	}
}

func (h *getProfileHandler) Handle(ctx context.Context, qry query.GetProfile) (query.GetProfileResult, error) {
	key := model.ProfileKey{Region: qry.Region, GameName: qry.GameName, TagLine: qry.TagLine}
	if err := key.Validate(); err != nil {
		return query.GetProfileResult{}, err
	}

	profile, fetchedAt, err := h.profiles.Get(ctx, key)
	if err != nil {
		return query.GetProfileResult{}, err
	}

	return query.GetProfileResult{Profile: profile, FetchedAt: fetchedAt}, nil
}
