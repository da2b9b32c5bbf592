package http

import (
	"context"
	"net/http"
	"time"

	"github.com/riftbook/rift-social/internal/app/service"
)

// Pinger checks one backing dependency's connectivity.
type Pinger func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports connectivity of the backing dependencies and
// the number of currently-connected users. It is mounted outside the
// auth chain. The presence registry may be nil.
func HealthHandler(checks map[string]Pinger, presence *service.PresenceRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				deps[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "up"
		}

		body := map[string]any{
			"status":       healthWord(status),
			"dependencies": deps,
		}
		if presence != nil {
			body["online_users"] = len(presence.Snapshot())
		}

		writeJSON(w, status, body)
	})
}

func healthWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
