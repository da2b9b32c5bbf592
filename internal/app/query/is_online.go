package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// isOnlineHandler implements query.IsOnlineHandler.
type isOnlineHandler struct {
	presence *service.PresenceRegistry
}

// NewIsOnlineHandler creates a new IsOnlineHandler.
func NewIsOnlineHandler(presence *service.PresenceRegistry) query.IsOnlineHandler {
	return &isOnlineHandler{
		presence: presence,
	}
}

func (h *isOnlineHandler) Handle(ctx context.Context, qry query.IsOnline) (query.IsOnlineResult, error) {
	if qry.RequesterID == "" || qry.TargetID == "" {
		return query.IsOnlineResult{}, domainerror.ErrUserIDRequired
	}

	// The friendship gate lives inside the registry; there is no
	// ungated path to presence from here.
	online, err := h.presence.IsOnlineVisibleTo(ctx, qry.RequesterID, qry.TargetID)
	if err != nil {
		return query.IsOnlineResult{}, err
	}

	return query.IsOnlineResult{Online: online}, nil
}
