package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// Handler serves the REST surface of the social service.
type Handler struct {
	// Command handlers
	sendFriendRequestHandler    command.SendFriendRequestHandler
	respondFriendRequestHandler command.RespondFriendRequestHandler
	removeFriendHandler         command.RemoveFriendHandler
	sendChatMessageHandler      command.SendChatMessageHandler
	refreshProfileHandler       command.RefreshProfileHandler

	// Query handlers
	getProfileHandler           query.GetProfileHandler
	getTopMasteriesHandler      query.GetTopMasteriesHandler
	listMatchIDsHandler         query.ListMatchIDsHandler
	listMatchDetailsHandler     query.ListMatchDetailsHandler
	getMatchHandler             query.GetMatchHandler
	getTimelineHandler          query.GetTimelineHandler
	listFriendsHandler          query.ListFriendsHandler
	listIncomingRequestsHandler query.ListIncomingRequestsHandler
	listOutgoingRequestsHandler query.ListOutgoingRequestsHandler
	isOnlineHandler             query.IsOnlineHandler
	chatHistoryHandler          query.ChatHistoryHandler

	stream *StreamBridge
	logger *zap.Logger
}

// HandlerConfig holds all the handlers needed by the HTTP handler.
type HandlerConfig struct {
	SendFriendRequestHandler    command.SendFriendRequestHandler
	RespondFriendRequestHandler command.RespondFriendRequestHandler
	RemoveFriendHandler         command.RemoveFriendHandler
	SendChatMessageHandler      command.SendChatMessageHandler
	RefreshProfileHandler       command.RefreshProfileHandler

	GetProfileHandler           query.GetProfileHandler
	GetTopMasteriesHandler      query.GetTopMasteriesHandler
	ListMatchIDsHandler         query.ListMatchIDsHandler
	ListMatchDetailsHandler     query.ListMatchDetailsHandler
	GetMatchHandler             query.GetMatchHandler
	GetTimelineHandler          query.GetTimelineHandler
	ListFriendsHandler          query.ListFriendsHandler
	ListIncomingRequestsHandler query.ListIncomingRequestsHandler
	ListOutgoingRequestsHandler query.ListOutgoingRequestsHandler
	IsOnlineHandler             query.IsOnlineHandler
	ChatHistoryHandler          query.ChatHistoryHandler

	Stream *StreamBridge
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig, logger *zap.Logger) *Handler {
	return &Handler{
		sendFriendRequestHandler:    cfg.SendFriendRequestHandler,
		respondFriendRequestHandler: cfg.RespondFriendRequestHandler,
		removeFriendHandler:         cfg.RemoveFriendHandler,
		sendChatMessageHandler:      cfg.SendChatMessageHandler,
		refreshProfileHandler:       cfg.RefreshProfileHandler,
		getProfileHandler:           cfg.GetProfileHandler,
		getTopMasteriesHandler:      cfg.GetTopMasteriesHandler,
		listMatchIDsHandler:         cfg.ListMatchIDsHandler,
		listMatchDetailsHandler:     cfg.ListMatchDetailsHandler,
		getMatchHandler:             cfg.GetMatchHandler,
		getTimelineHandler:          cfg.GetTimelineHandler,
		listFriendsHandler:          cfg.ListFriendsHandler,
		listIncomingRequestsHandler: cfg.ListIncomingRequestsHandler,
		listOutgoingRequestsHandler: cfg.ListOutgoingRequestsHandler,
		isOnlineHandler:             cfg.IsOnlineHandler,
		chatHistoryHandler:          cfg.ChatHistoryHandler,
		stream:                      cfg.Stream,
		logger:                      logger,
	}
}

// Register mounts every route on the mux. Authentication is applied by
// the caller around the whole mux; /healthz is mounted separately.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/profiles/{region}/{name}/{tag}", h.getProfile)
	mux.HandleFunc("POST /v1/profiles/{region}/{name}/{tag}/refresh", h.refreshProfile)
	mux.HandleFunc("GET /v1/profiles/{region}/{name}/{tag}/masteries", h.getMasteries)
	mux.HandleFunc("GET /v1/matches/{region}/{puuid}", h.listMatchIDs)
	mux.HandleFunc("GET /v1/matches/{region}/{puuid}/details", h.listMatchDetails)
	mux.HandleFunc("GET /v1/match/{region}/{id}", h.getMatch)
	mux.HandleFunc("GET /v1/match/{region}/{id}/timeline", h.getTimeline)
	mux.HandleFunc("POST /v1/friends/requests", h.sendFriendRequest)
	mux.HandleFunc("GET /v1/friends/requests/incoming", h.listIncomingRequests)
	mux.HandleFunc("GET /v1/friends/requests/outgoing", h.listOutgoingRequests)
	mux.HandleFunc("POST /v1/friends/requests/{requester}/respond", h.respondFriendRequest)
	mux.HandleFunc("GET /v1/friends", h.listFriends)
	mux.HandleFunc("DELETE /v1/friends/{id}", h.removeFriend)
	mux.HandleFunc("GET /v1/presence/{id}", h.getPresence)
	mux.HandleFunc("POST /v1/chat/{id}", h.sendChatMessage)
	mux.HandleFunc("GET /v1/chat/{id}", h.chatHistory)
	mux.HandleFunc("GET /v1/stream", h.streamEvents)
}

// Profile endpoints

type profileResponse struct {
	Profile   *model.Profile `json:"profile"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.getProfileHandler.Handle(r.Context(), query.GetProfile{
		Region:   r.PathValue("region"),
		GameName: r.PathValue("name"),
		TagLine:  r.PathValue("tag"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Profile: result.Profile, FetchedAt: result.FetchedAt})
}

func (h *Handler) refreshProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.refreshProfileHandler.Handle(r.Context(), command.RefreshProfile{
		Region:   r.PathValue("region"),
		GameName: r.PathValue("name"),
		TagLine:  r.PathValue("tag"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Profile: result.Profile, FetchedAt: result.FetchedAt})
}

func (h *Handler) getMasteries(w http.ResponseWriter, r *http.Request) {
	// Masteries are keyed by puuid upstream; resolve through the cached
	// profile so a fresh profile read is free.
	profile, err := h.getProfileHandler.Handle(r.Context(), query.GetProfile{
		Region:   r.PathValue("region"),
		GameName: r.PathValue("name"),
		TagLine:  r.PathValue("tag"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.getTopMasteriesHandler.Handle(r.Context(), query.GetTopMasteries{
		Region: r.PathValue("region"),
		PUUID:  profile.Profile.PUUID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"masteries": result.Masteries})
}

// Match endpoints

func (h *Handler) listMatchIDs(w http.ResponseWriter, r *http.Request) {
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.listMatchIDsHandler.Handle(r.Context(), query.ListMatchIDs{
		Region: r.PathValue("region"),
		PUUID:  r.PathValue("puuid"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matchIds": result.MatchIDs,
		"page":     result.Page,
		"size":     result.Size,
	})
}

func (h *Handler) listMatchDetails(w http.ResponseWriter, r *http.Request) {
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.listMatchDetailsHandler.Handle(r.Context(), query.ListMatchDetails{
		Region: r.PathValue("region"),
		PUUID:  r.PathValue("puuid"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches":    result.Matches,
		"restricted": result.Restricted,
	})
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.getMatchHandler.Handle(r.Context(), query.GetMatch{
		Region:  r.PathValue("region"),
		MatchID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Match)
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	result, err := h.getTimelineHandler.Handle(r.Context(), query.GetTimeline{
		Region:  r.PathValue("region"),
		MatchID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Timeline)
}

// Friend endpoints

type friendRequestResponse struct {
	ID          string `json:"id"`
	RequesterID string `json:"requesterId"`
	RecipientID string `json:"recipientId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func toFriendRequestResponse(request *model.FriendRequest) friendRequestResponse {
	return friendRequestResponse{
		ID:          request.ID().String(),
		RequesterID: request.RequesterID(),
		RecipientID: request.RecipientID(),
		Status:      request.Status().String(),
		CreatedAt:   request.CreatedAt().Format(time.RFC3339),
	}
}

func (h *Handler) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	var body struct {
		Recipient string `json:"recipient"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domainerror.ErrUserIDRequired)
		return
	}

	result, err := h.sendFriendRequestHandler.Handle(r.Context(), command.SendFriendRequest{
		RequesterID: principal,
		RecipientID: body.Recipient,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFriendRequestResponse(result.Request))
}

func (h *Handler) respondFriendRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	var body struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domainerror.ErrUserIDRequired)
		return
	}

	result, err := h.respondFriendRequestHandler.Handle(r.Context(), command.RespondFriendRequest{
		RequesterID: r.PathValue("requester"),
		RecipientID: principal,
		Accept:      body.Accept,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFriendRequestResponse(result.Request))
}

func (h *Handler) listFriends(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	result, err := h.listFriendsHandler.Handle(r.Context(), query.ListFriends{UserID: principal})
	if err != nil {
		writeError(w, err)
		return
	}
	if result.FriendIDs == nil {
		result.FriendIDs = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"friends": result.FriendIDs})
}

func (h *Handler) listIncomingRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	result, err := h.listIncomingRequestsHandler.Handle(r.Context(), query.ListIncomingRequests{UserID: principal})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": toFriendRequestResponses(result.Requests)})
}

func (h *Handler) listOutgoingRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	result, err := h.listOutgoingRequestsHandler.Handle(r.Context(), query.ListOutgoingRequests{UserID: principal})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": toFriendRequestResponses(result.Requests)})
}

func toFriendRequestResponses(requests []*model.FriendRequest) []friendRequestResponse {
	out := make([]friendRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, toFriendRequestResponse(request))
	}
	return out
}

func (h *Handler) removeFriend(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	_, err = h.removeFriendHandler.Handle(r.Context(), command.RemoveFriend{
		UserID:  principal,
		OtherID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Presence endpoint

func (h *Handler) getPresence(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	result, err := h.isOnlineHandler.Handle(r.Context(), query.IsOnline{
		RequesterID: principal,
		TargetID:    r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"online": result.Online})
}

// Chat endpoints

type chatMessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sentAt"`
}

func toChatMessageResponse(message *model.ChatMessage) chatMessageResponse {
	return chatMessageResponse{
		ID:          message.ID().String(),
		SenderID:    message.SenderID(),
		RecipientID: message.RecipientID(),
		Content:     message.Content(),
		SentAt:      message.SentAt(),
	}
}

func (h *Handler) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domainerror.ErrContentRequired)
		return
	}

	result, err := h.sendChatMessageHandler.Handle(r.Context(), command.SendChatMessage{
		SenderID:    principal,
		RecipientID: r.PathValue("id"),
		Content:     body.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChatMessageResponse(result.Message))
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.chatHistoryHandler.Handle(r.Context(), query.ChatHistory{
		UserID:  principal,
		OtherID: r.PathValue("id"),
		Page:    page,
		Size:    size,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	messages := make([]chatMessageResponse, 0, len(result.Messages))
	for _, message := range result.Messages {
		messages = append(messages, toChatMessageResponse(message))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"total":    result.Total,
		"page":     result.Page,
		"size":     result.Size,
	})
}

// pagination reads optional page/size query parameters. Absent values
// default to zero and let each handler apply its own defaults.
func pagination(r *http.Request) (page, size int, err error) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerror.ErrPageInvalid
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerror.ErrPageInvalid
		}
	}
	return page, size, nil
}
