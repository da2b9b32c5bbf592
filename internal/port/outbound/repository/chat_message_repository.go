package repository

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// ChatMessageRepository defines the interface for chat message
// persistence. Messages are append-only.
type ChatMessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *model.ChatMessage) error

	// ListBetween returns messages between the unordered pair, sorted
	// ascending by send time, paginated by limit/offset.
	ListBetween(ctx context.Context, userID, otherID string, limit, offset int) ([]*model.ChatMessage, error)

	// CountBetween returns the total number of messages between the
	// unordered pair.
	CountBetween(ctx context.Context, userID, otherID string) (int64, error)
}
