package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// getMatchHandler implements query.GetMatchHandler.
type getMatchHandler struct {
	matches *service.Immutable[model.MatchKey, *model.Match]
}

// NewGetMatchHandler creates a new GetMatchHandler.
func NewGetMatchHandler(
	matches *service.Immutable[model.MatchKey, *model.Match],
) query.GetMatchHandler {
	return &getMatchHandler{
		matches: matches,
	}
}

func (h *getMatchHandler) Handle(ctx context.Context, qry query.GetMatch) (query.GetMatchResult, error) {
	key := model.MatchKey{Region: qry.Region, MatchID: qry.MatchID}
	if err := key.Validate(); err != nil {
		return query.GetMatchResult{}, err
	}

	// A direct lookup surfaces Restricted to the caller; only list
	// consumers are allowed to swallow it.
	match, err := h.matches.Get(ctx, key)
	if err != nil {
		return query.GetMatchResult{}, err
	}

	return query.GetMatchResult{Match: match}, nil
}
