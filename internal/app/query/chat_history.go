package query

import (
	"context"
	"math"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

const (
	defaultHistoryPageSize = 50
	maxHistoryPageSize     = 100

	// maxHistoryPage bounds the page number so the offset product
	// cannot overflow into a negative SQL OFFSET.
	maxHistoryPage = math.MaxInt / maxHistoryPageSize
)

// chatHistoryHandler implements query.ChatHistoryHandler.
type chatHistoryHandler struct {
	messages repository.ChatMessageRepository
}

// NewChatHistoryHandler creates a new ChatHistoryHandler.
func NewChatHistoryHandler(messages repository.ChatMessageRepository) query.ChatHistoryHandler {
	return &chatHistoryHandler{
		messages: messages,
	}
}

func (h *chatHistoryHandler) Handle(ctx context.Context, qry query.ChatHistory) (query.ChatHistoryResult, error) {
	if qry.UserID == "" || qry.OtherID == "" {
		return query.ChatHistoryResult{}, domainerror.ErrUserIDRequired
	}
	if qry.Page < 0 || qry.Page > maxHistoryPage {
		return query.ChatHistoryResult{}, domainerror.ErrPageInvalid
	}

	size := qry.Size
	if size <= 0 {
		size = defaultHistoryPageSize
	}
	if size > maxHistoryPageSize {
		size = maxHistoryPageSize
	}

	msgs, err := h.messages.ListBetween(ctx, qry.UserID, qry.OtherID, size, qry.Page*size)
	if err != nil {
		return query.ChatHistoryResult{}, err
	}

	total, err := h.messages.CountBetween(ctx, qry.UserID, qry.OtherID)
	if err != nil {
		return query.ChatHistoryResult{}, err
	}

	return query.ChatHistoryResult{
		Messages: msgs,
		Total:    total,
		Page:     qry.Page,
		Size:     size,
	}, nil
}
