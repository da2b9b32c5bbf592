package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// GetTopMasteries reads a player's top-3 champion masteries (cached).
type GetTopMasteries struct {
	Region string
	PUUID  string
}

func (q GetTopMasteries) QueryName() string {
	return "social.get_top_masteries"
}

// GetTopMasteriesResult contains the mastery entries, highest first.
type GetTopMasteriesResult struct {
	Masteries []model.ChampionMastery
}

// GetTopMasteriesHandler handles the GetTopMasteries query.
type GetTopMasteriesHandler interface {
	Handle(ctx context.Context, qry GetTopMasteries) (GetTopMasteriesResult, error)
}
