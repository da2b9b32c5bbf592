package query

import (
	"context"
)

// ListMatchIDs returns one page of a player's match ids. The page size
// is clamped to the upstream maximum (20) and the listing never reaches
// past the absolute upstream cap (100 ids in total).
type ListMatchIDs struct {
	Region string
	PUUID  string
	Page   int
	Size   int
}

func (q ListMatchIDs) QueryName() string {
	return "social.list_match_ids"
}

// ListMatchIDsResult contains the page of ids and the effective paging
// parameters after clamping.
type ListMatchIDsResult struct {
	MatchIDs []string
	Page     int
	Size     int
}

// ListMatchIDsHandler handles the ListMatchIDs query.
type ListMatchIDsHandler interface {
	Handle(ctx context.Context, qry ListMatchIDs) (ListMatchIDsResult, error)
}
