package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
	"github.com/riftbook/rift-social/internal/port/outbound/upstream"
)

// listMatchIDsHandler implements query.ListMatchIDsHandler.
type listMatchIDsHandler struct {
	matchLists *service.Freshness[model.MatchListKey, []string]
}

// NewListMatchIDsHandler creates a new ListMatchIDsHandler.
func NewListMatchIDsHandler(
	matchLists *service.Freshness[model.MatchListKey, []string],
) query.ListMatchIDsHandler {
	return &listMatchIDsHandler{
		matchLists: matchLists,
	}
}

func (h *listMatchIDsHandler) Handle(ctx context.Context, qry query.ListMatchIDs) (query.ListMatchIDsResult, error) {
	page, size := qry.Page, qry.Size
	if size <= 0 {
		size = upstream.MaxMatchPageSize
	}
	if size > upstream.MaxMatchPageSize {
		size = upstream.MaxMatchPageSize
	}
	if page < 0 {
		return query.ListMatchIDsResult{}, domainerror.ErrPageInvalid
	}

	// The provider caps total retrievable ids; pages past the cap are
	// empty by definition, no upstream call needed. The page bound also
	// keeps the offset product far from integer overflow.
	if page >= upstream.MaxMatchIDs || page*size >= upstream.MaxMatchIDs {
		return query.ListMatchIDsResult{MatchIDs: []string{}, Page: page, Size: size}, nil
	}

	key := model.MatchListKey{Region: qry.Region, PUUID: qry.PUUID, Page: page, Size: size}
	if err := key.Validate(); err != nil {
		return query.ListMatchIDsResult{}, err
	}

	ids, _, err := h.matchLists.Get(ctx, key)
	if err != nil {
		return query.ListMatchIDsResult{}, err
	}

	// Clamp the final partial page to the absolute cap.
	if remaining := upstream.MaxMatchIDs - page*size; len(ids) > remaining {
		ids = ids[:remaining]
	}

	return query.ListMatchIDsResult{MatchIDs: ids, Page: page, Size: size}, nil
}
