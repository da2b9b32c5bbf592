package command

import (
	"context"

	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
)

// refreshProfileHandler implements command.RefreshProfileHandler.
type refreshProfileHandler struct {
	profiles *service.Freshness[model.ProfileKey, *model.Profile]
}

// NewRefreshProfileHandler creates a new RefreshProfileHandler.
func NewRefreshProfileHandler(
	profiles *service.Freshness[model.ProfileKey, *model.Profile],
) command.RefreshProfileHandler {
	return &refreshProfileHandler{
		profiles: profiles,
	}
}

func (h *refreshProfileHandler) Handle(ctx context.Context, cmd command.RefreshProfile) (command.RefreshProfileResult, error) {
	key := model.ProfileKey{Region: cmd.Region, GameName: cmd.GameName, TagLine: cmd.TagLine}
	if err := key.Validate(); err != nil {
		return command.RefreshProfileResult{}, err
	}

	profile, fetchedAt, err := h.profiles.ForceRefresh(ctx, key)
	if err != nil {
		return command.RefreshProfileResult{}, err
	}

	return command.RefreshProfileResult{Profile: profile, FetchedAt: fetchedAt}, nil
}
