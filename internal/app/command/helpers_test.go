package command

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

// memRequestRepo is an in-memory FriendRequestRepository. Edges are
// kept in insertion order, which doubles as creation order for the
// oldest-first listings.
type memRequestRepo struct {
	mu    sync.Mutex
	edges []*model.FriendRequest

	createErr error
	updateErr error
	deleteErr error
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{}
}

func (r *memRequestRepo) Create(_ context.Context, request *model.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, e := range r.edges {
		if e.IsPending() && e.RequesterID() == request.RequesterID() && e.RecipientID() == request.RecipientID() {
			return repository.ErrDuplicate
		}
	}
	r.edges = append(r.edges, request)
	return nil
}

func (r *memRequestRepo) Update(_ context.Context, request *model.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, e := range r.edges {
		if e.ID() == request.ID() {
			r.edges[i] = request
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memRequestRepo) FindLatestByPair(_ context.Context, requesterID, recipientID string) (*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.edges) - 1; i >= 0; i-- {
		e := r.edges[i]
		if e.RequesterID() == requesterID && e.RecipientID() == recipientID {
			return e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRequestRepo) FindAcceptedBetween(_ context.Context, userID, otherID string) (*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.edges {
		if e.IsAccepted() && e.Touches(userID) && e.Touches(otherID) {
			return e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRequestRepo) ExistsAcceptedBetween(ctx context.Context, userID, otherID string) (bool, error) {
	_, err := r.FindAcceptedBetween(ctx, userID, otherID)
	if err == repository.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *memRequestRepo) ListPendingByRecipient(_ context.Context, userID string) ([]*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.FriendRequest
	for _, e := range r.edges {
		if e.IsPending() && e.RecipientID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRequestRepo) ListPendingByRequester(_ context.Context, userID string) ([]*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.FriendRequest
	for _, e := range r.edges {
		if e.IsPending() && e.RequesterID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRequestRepo) ListAcceptedTouching(_ context.Context, userID string) ([]*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.FriendRequest
	for _, e := range r.edges {
		if e.IsAccepted() && e.Touches(userID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, e := range r.edges {
		if e.ID() == id {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memRequestRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.edges)
}

// memMessageRepo is an in-memory ChatMessageRepository.
type memMessageRepo struct {
	mu       sync.Mutex
	messages []*model.ChatMessage

	createErr error
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Create(_ context.Context, message *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *memMessageRepo) ListBetween(_ context.Context, userID, otherID string, limit, offset int) ([]*model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pair []*model.ChatMessage
	for _, m := range r.messages {
		if m.Between(userID, otherID) {
			pair = append(pair, m)
		}
	}
	if offset >= len(pair) {
		return nil, nil
	}
	pair = pair[offset:]
	if len(pair) > limit {
		pair = pair[:limit]
	}
	return pair, nil
}

func (r *memMessageRepo) CountBetween(_ context.Context, userID, otherID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.Between(userID, otherID) {
			n++
		}
	}
	return n, nil
}

type directDelivery struct {
	userID string
	evt    event.Event
}

// capturePublisher records publishes and can be forced to fail either
// path independently.
type capturePublisher struct {
	mu        sync.Mutex
	published []event.Event
	direct    []directDelivery

	publishErr error
	directErr  error
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{}
}

func (p *capturePublisher) Publish(_ context.Context, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.published = append(p.published, evt)
	return nil
}

func (p *capturePublisher) PublishDirect(_ context.Context, userID string, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.directErr != nil {
		return p.directErr
	}
	p.direct = append(p.direct, directDelivery{userID: userID, evt: evt})
	return nil
}

func (p *capturePublisher) lastPublished() event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.published) == 0 {
		return nil
	}
	return p.published[len(p.published)-1]
}

func (p *capturePublisher) lastDirect() (directDelivery, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.direct) == 0 {
		return directDelivery{}, false
	}
	return p.direct[len(p.direct)-1], true
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
