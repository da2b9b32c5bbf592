package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Validate validates the server configuration.
func (c ServerConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("server address required")
	}
	return nil
}

// Server wraps the http.Server for the social service.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

// NewServer creates a new Server. The auth middleware wraps the API
// routes only; the health endpoint stays reachable unauthenticated.
func NewServer(
	cfg ServerConfig,
	handler *Handler,
	auth *Authenticator,
	health http.Handler,
	logger *zap.Logger,
) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	api := http.NewServeMux()
	handler.Register(api)

	root := http.NewServeMux()
	root.Handle("/healthz", health)
	root.Handle("/", Chain(api,
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		AuthMiddleware(auth),
	))

	// WriteTimeout must stay zero when the stream endpoint is served;
	// a nonzero value would sever long-lived SSE connections.
	return &Server{
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      root,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}, nil
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping http server")
	return s.server.Shutdown(ctx)
}
