package query

import (
	"context"
)

// Query is a marker interface for all queries.
type Query interface {
	// QueryName returns the name of the query for logging/tracing.
	QueryName() string
}

// Handler handles a specific query type.
type Handler[Q Query, R any] interface {
	Handle(ctx context.Context, qry Q) (R, error)
}
