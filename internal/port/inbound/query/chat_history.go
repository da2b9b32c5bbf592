package query

import (
	"context"

	"github.com/riftbook/rift-social/internal/domain/model"
)

// ChatHistory returns the paginated message history between the
// unordered pair, ascending by send time. History does not require a
// current friendship: past messages stay readable.
type ChatHistory struct {
	UserID  string
	OtherID string
	Page    int
	Size    int
}

func (q ChatHistory) QueryName() string {
	return "social.chat_history"
}

// ChatHistoryResult contains one page of messages plus the total count.
type ChatHistoryResult struct {
	Messages []*model.ChatMessage
	Total    int64
	Page     int
	Size     int
}

// ChatHistoryHandler handles the ChatHistory query.
type ChatHistoryHandler interface {
	Handle(ctx context.Context, qry ChatHistory) (ChatHistoryResult, error)
}
