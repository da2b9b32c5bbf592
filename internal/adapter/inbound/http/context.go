package http

import (
	"context"
	"errors"
)

type contextKey string

const principalKey contextKey = "principal"

// ErrNoPrincipalInContext indicates a handler ran without the auth
// middleware having stored a verified principal.
var ErrNoPrincipalInContext = errors.New("no principal in context")

// WithPrincipal adds the authenticated user id to the context.
func WithPrincipal(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalKey, userID)
}

// PrincipalFromContext extracts the authenticated user id.
func PrincipalFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(principalKey)
	if val == nil {
		return "", ErrNoPrincipalInContext
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", ErrNoPrincipalInContext
	}
	return userID, nil
}
