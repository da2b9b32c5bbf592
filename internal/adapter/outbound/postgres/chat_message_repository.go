package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

const (
	insertChatMessageSQL = `
		INSERT INTO chat_messages (id, sender_id, recipient_id, content, sent_at)
		VALUES ($1, $2, $3, $4, $5)`

	listMessagesBetweenSQL = `
		SELECT id, sender_id, recipient_id, content, sent_at
		FROM chat_messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY sent_at ASC, id ASC
		LIMIT $3 OFFSET $4`

	countMessagesBetweenSQL = `
		SELECT COUNT(*)
		FROM chat_messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)`
)

// chatMessageRepository implements repository.ChatMessageRepository.
// Message ids are ULIDs stored as text; the secondary id sort keeps
// same-timestamp messages in send order.
type chatMessageRepository struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(pool *pgxpool.Pool) repository.ChatMessageRepository {
	return &chatMessageRepository{pool: pool}
}

func (r *chatMessageRepository) Create(ctx context.Context, message *model.ChatMessage) error {
	_, err := r.pool.Exec(ctx, insertChatMessageSQL,
		message.ID().String(),
		message.SenderID(),
		message.RecipientID(),
		message.Content(),
		message.SentAt(),
	)
	return err
}

func (r *chatMessageRepository) ListBetween(ctx context.Context, userID, otherID string, limit, offset int) ([]*model.ChatMessage, error) {
	rows, err := r.pool.Query(ctx, listMessagesBetweenSQL, userID, otherID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ChatMessage
	for rows.Next() {
		var (
			rawID                 string
			senderID, recipientID string
			content               string
			sentAt                time.Time
		)
		if err := rows.Scan(&rawID, &senderID, &recipientID, &content, &sentAt); err != nil {
			return nil, err
		}
		id, err := ulid.Parse(rawID)
		if err != nil {
			return nil, err
		}
		messages = append(messages, model.ReconstructChatMessage(id, senderID, recipientID, content, sentAt))
	}
	return messages, rows.Err()
}

func (r *chatMessageRepository) CountBetween(ctx context.Context, userID, otherID string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, countMessagesBetweenSQL, userID, otherID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
