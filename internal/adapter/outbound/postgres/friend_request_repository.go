package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// The schema enforces pending-pair uniqueness with a partial unique
// index, so Create never needs a check-then-insert round trip:
//
//	CREATE UNIQUE INDEX friend_requests_pending_pair
//	    ON friend_requests (requester_id, recipient_id)
//	    WHERE status = 'pending';
const (
	insertFriendRequestSQL = `
		INSERT INTO friend_requests (id, requester_id, recipient_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	updateFriendRequestSQL = `
		UPDATE friend_requests
		SET status = $2, updated_at = $3
		WHERE id = $1`

	findLatestByPairSQL = `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM friend_requests
		WHERE requester_id = $1 AND recipient_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	findAcceptedBetweenSQL = `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM friend_requests
		WHERE status = 'accepted'
		  AND ((requester_id = $1 AND recipient_id = $2)
		    OR (requester_id = $2 AND recipient_id = $1))
		LIMIT 1`

	existsAcceptedBetweenSQL = `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE status = 'accepted'
			  AND ((requester_id = $1 AND recipient_id = $2)
			    OR (requester_id = $2 AND recipient_id = $1))
		)`

	listPendingByRecipientSQL = `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM friend_requests
		WHERE status = 'pending' AND recipient_id = $1
		ORDER BY created_at ASC`

	listPendingByRequesterSQL = `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM friend_requests
		WHERE status = 'pending' AND requester_id = $1
		ORDER BY created_at ASC`

	listAcceptedTouchingSQL = `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM friend_requests
		WHERE status = 'accepted' AND (requester_id = $1 OR recipient_id = $1)
		ORDER BY updated_at DESC`

	deleteFriendRequestSQL = `
		DELETE FROM friend_requests WHERE id = $1`
)

// friendRequestRepository implements repository.FriendRequestRepository.
type friendRequestRepository struct {
	pool *pgxpool.Pool
}

// NewFriendRequestRepository creates a new FriendRequestRepository.
func NewFriendRequestRepository(pool *pgxpool.Pool) repository.FriendRequestRepository {
	return &friendRequestRepository{pool: pool}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *model.FriendRequest) error {
	_, err := r.pool.Exec(ctx, insertFriendRequestSQL,
		request.ID(),
		request.RequesterID(),
		request.RecipientID(),
		request.Status().String(),
		request.CreatedAt(),
		request.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *friendRequestRepository) Update(ctx context.Context, request *model.FriendRequest) error {
	tag, err := r.pool.Exec(ctx, updateFriendRequestSQL,
		request.ID(),
		request.Status().String(),
		request.UpdatedAt(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *friendRequestRepository) FindLatestByPair(ctx context.Context, requesterID, recipientID string) (*model.FriendRequest, error) {
	row := r.pool.QueryRow(ctx, findLatestByPairSQL, requesterID, recipientID)
	return scanFriendRequest(row)
}

func (r *friendRequestRepository) FindAcceptedBetween(ctx context.Context, userID, otherID string) (*model.FriendRequest, error) {
	row := r.pool.QueryRow(ctx, findAcceptedBetweenSQL, userID, otherID)
	return scanFriendRequest(row)
}

func (r *friendRequestRepository) ExistsAcceptedBetween(ctx context.Context, userID, otherID string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, existsAcceptedBetweenSQL, userID, otherID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *friendRequestRepository) ListPendingByRecipient(ctx context.Context, userID string) ([]*model.FriendRequest, error) {
	return r.list(ctx, listPendingByRecipientSQL, userID)
}

func (r *friendRequestRepository) ListPendingByRequester(ctx context.Context, userID string) ([]*model.FriendRequest, error) {
	return r.list(ctx, listPendingByRequesterSQL, userID)
}

func (r *friendRequestRepository) ListAcceptedTouching(ctx context.Context, userID string) ([]*model.FriendRequest, error) {
	return r.list(ctx, listAcceptedTouchingSQL, userID)
}

func (r *friendRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteFriendRequestSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *friendRequestRepository) list(ctx context.Context, sql string, userID string) ([]*model.FriendRequest, error) {
	rows, err := r.pool.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*model.FriendRequest
	for rows.Next() {
		request, err := scanFriendRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func scanFriendRequest(row pgx.Row) (*model.FriendRequest, error) {
	var (
		id                       uuid.UUID
		requesterID, recipientID string
		status                   string
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&id, &requesterID, &recipientID, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return model.ReconstructFriendRequest(
		id,
		requesterID,
		recipientID,
		model.FriendRequestStatus(status),
		createdAt,
		updatedAt,
	), nil
}
