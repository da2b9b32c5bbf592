package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// ListMatchDetails resolves one page of a player's match history into
// full match details. Ids the upstream reports as restricted are
// dropped from the result rather than failing the page.
type ListMatchDetails struct {
	Region string
	PUUID  string
	Page   int
	Size   int
}

func (q ListMatchDetails) QueryName() string {
	return "social.list_match_details"
}

// ListMatchDetailsResult contains the resolved details. Restricted
// counts ids that were dropped because upstream denied access to them.
type ListMatchDetailsResult struct {
	Matches    []*model.Match
	Restricted int
}

// ListMatchDetailsHandler handles the ListMatchDetails query.
type ListMatchDetailsHandler interface {
	Handle(ctx context.Context, qry ListMatchDetails) (ListMatchDetailsResult, error)
}
