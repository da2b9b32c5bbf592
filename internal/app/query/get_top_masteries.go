package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// getTopMasteriesHandler implements query.GetTopMasteriesHandler.
type getTopMasteriesHandler struct {
	masteries *service.Freshness[model.MasteryKey, []model.ChampionMastery]
}

// NewGetTopMasteriesHandler creates a new GetTopMasteriesHandler.
func NewGetTopMasteriesHandler(
	masteries *service.Freshness[model.MasteryKey, []model.ChampionMastery],
) query.GetTopMasteriesHandler {
	return &getTopMasteriesHandler{
		masteries: masteries,
	}
}

func (h *getTopMasteriesHandler) Handle(ctx context.Context, qry query.GetTopMasteries) (query.GetTopMasteriesResult, error) {
	key := model.MasteryKey{Region: qry.Region, PUUID: qry.PUUID}
	if err := key.Validate(); err != nil {
		return query.GetTopMasteriesResult{}, err
	}

	masteries, _, err := h.masteries.Get(ctx, key)
	if err != nil {
		return query.GetTopMasteriesResult{}, err
	}

	return query.GetTopMasteriesResult{Masteries: masteries}, nil
}
