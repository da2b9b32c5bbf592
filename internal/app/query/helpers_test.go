package query

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/outbound/cache"
	"github.com/riftbook/rift-social/internal/port/outbound/repository"
)

type memEntryStore struct {
	mu      sync.Mutex
	entries map[string]cache.Entry
}

func newMemEntryStore() *memEntryStore {
	return &memEntryStore{entries: make(map[string]cache.Entry)}
}

func (s *memEntryStore) Get(_ context.Context, key string) (*cache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *memEntryStore) Put(_ context.Context, key string, entry cache.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

// memRequestRepo is an in-memory FriendRequestRepository seeded
// directly with constructed edges.
type memRequestRepo struct {
	mu    sync.Mutex
	edges []*model.FriendRequest
}

func newMemRequestRepo(edges ...*model.FriendRequest) *memRequestRepo {
	return &memRequestRepo{edges: edges}
}

func (r *memRequestRepo) Create(_ context.Context, request *model.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges = append(r.edges, request)
	return nil
}

func (r *memRequestRepo) Update(_ context.Context, request *model.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	for i, e := range r.edges {
		if e.ID() == id {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// memMessageRepo is an in-memory ChatMessageRepository.
type memMessageRepo struct {
	mu       sync.Mutex
	messages []*model.ChatMessage
}

func newMemMessageRepo(messages ...*model.ChatMessage) *memMessageRepo {
	return &memMessageRepo{messages: messages}
}

func (r *memMessageRepo) Create(_ context.Context, message *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

// acceptedEdge builds an already-accepted request between the pair.
func acceptedEdge(requesterID, recipientID string) *model.FriendRequest {
	request, err := model.NewFriendRequest(requesterID, recipientID)
	if err != nil {
		panic(err)
	}
	if err := request.Accept(); err != nil {
		panic(err)
	}
	return request
}

// pendingEdge builds a pending request between the pair.
func pendingEdge(requesterID, recipientID string) *model.FriendRequest {
	request, err := model.NewFriendRequest(requesterID, recipientID)
	if err != nil {
		panic(err)
	}
	return request
}
