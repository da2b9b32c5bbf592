package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// GetMatch reads one match detail. Matches are immutable: once fetched
// the cached value is served forever. A direct lookup of a restricted
// match surfaces the error rather than returning nothing.
type GetMatch struct {
	Region  string
	MatchID string
}

func (q GetMatch) QueryName() string {
	return "social.get_match"
}

// GetMatchResult contains the match detail.
type GetMatchResult struct {
	Match *model.Match
}

// GetMatchHandler handles the GetMatch query.
type GetMatchHandler interface {
	Handle(ctx context.Context, qry GetMatch) (GetMatchResult, error)
}
