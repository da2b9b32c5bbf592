package query

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/riftbook/rift-social/internal/app/service"
	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// detailFetchConcurrency bounds parallel match-detail lookups so a cold
// page does not burst the upstream rate limit.
const detailFetchConcurrency = 4

// listMatchDetailsHandler implements query.ListMatchDetailsHandler.
type listMatchDetailsHandler struct {
	matchIDs query.ListMatchIDsHandler
	matches  *service.Immutable[model.MatchKey, *model.Match]
}

// NewListMatchDetailsHandler creates a new ListMatchDetailsHandler.
func NewListMatchDetailsHandler(
	matchIDs query.ListMatchIDsHandler,
	matches *service.Immutable[model.MatchKey, *model.Match],
) query.ListMatchDetailsHandler {
	return &listMatchDetailsHandler{
		matchIDs: matchIDs,
		matches:  matches,
	}
}

func (h *listMatchDetailsHandler) Handle(ctx context.Context, qry query.ListMatchDetails) (query.ListMatchDetailsResult, error) {
	idsResult, err := h.matchIDs.Handle(ctx, query.ListMatchIDs{
		Region: qry.Region,
		PUUID:  qry.PUUID,
		Page:   qry.Page,
		Size:   qry.Size,
	})
	if err != nil {
		return query.ListMatchDetailsResult{}, err
	}

	details := make([]*model.Match, len(idsResult.MatchIDs))

	var mu sync.Mutex
	restricted := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchConcurrency)

	for i, matchID := range idsResult.MatchIDs {
		g.Go(func() error {
			match, err := h.matches.Get(gctx, model.MatchKey{Region: qry.Region, MatchID: matchID})
			if err != nil {
				// A restricted id is dropped from the listing rather
				// than failing the whole page. Any other failure aborts.
				if errors.Is(err, domainerror.ErrRestricted) {
					mu.Lock()
					restricted++
					mu.Unlock()
					return nil
				}
				return err
			}
			details[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return query.ListMatchDetailsResult{}, err
	}

	matches := make([]*model.Match, 0, len(details))
	for _, m := range details {
		if m != nil {
			matches = append(matches, m)
		}
	}

	return query.ListMatchDetailsResult{Matches: matches, Restricted: restricted}, nil
}
