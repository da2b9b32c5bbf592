package http

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/riftbook/rift-social/internal/app/service"
	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/port/outbound/messaging"
)

// heartbeatInterval keeps intermediaries from closing an idle stream.
const heartbeatInterval = 25 * time.Second

// StreamBridge connects a client's event stream to their direct
// subject and ties their presence to the connection lifetime.
type StreamBridge struct {
	subscriber messaging.DirectSubscriber
	presence   *service.PresenceRegistry
	logger     *zap.Logger
}

// NewStreamBridge creates a new StreamBridge.
func NewStreamBridge(
	subscriber messaging.DirectSubscriber,
	presence *service.PresenceRegistry,
	logger *zap.Logger,
) *StreamBridge {
	return &StreamBridge{
		subscriber: subscriber,
		presence:   presence,
		logger:     logger,
	}
}

// streamEvents serves the SSE endpoint. The principal is marked online
// for the duration of the connection and every payload published to
// their direct subject is forwarded as one SSE message.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, domainerror.ErrUnauthenticated)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, domainerror.ErrUnauthenticated.WithMessagef("streaming unsupported"))
		return
	}

	// Subscription handlers run on the messaging client's goroutine;
	// hand payloads to the writer loop instead of writing directly.
	events := make(chan []byte, 32)
	cancel, err := h.stream.subscriber.SubscribeDirect(principal, func(data []byte) {
		select {
		case events <- data:
		default:
			// A slow client drops live events; history catches them up.
		}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	defer cancel()

	h.stream.presence.MarkOnline(principal)
	defer h.stream.presence.MarkOffline(principal)

	h.stream.logger.Info("stream opened", zap.String("user_id", principal))
	defer h.stream.logger.Info("stream closed", zap.String("user_id", principal))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case data := <-events:
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
