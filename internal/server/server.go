package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kenh/donor-rfm/internal/config"
	"github.com/kenh/donor-rfm/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	databaseURL string
	jwtService  *JWTService
	apiKeys     *config.APIKeyConfig
	logger      zerolog.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string // Optional: persist runs started over the API
	AuthEnabled bool   // Require bearer tokens on /enrich
}

// New creates a new server instance
func New(cfg Config, logger zerolog.Logger) (*Server, error) {
	s := &Server{
		databaseURL: cfg.DatabaseURL,
		logger:      logger,
	}

	if cfg.AuthEnabled {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)

		apiKeys, err := config.NewAPIKeyConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create API key config: %w", err)
		}
		s.apiKeys = apiKeys
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch enrichment can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router, wrapping /enrich in auth when enabled.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	var enrich http.Handler = http.HandlerFunc(s.handleEnrich)
	if s.jwtService != nil {
		enrich = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(enrich)
		mux.HandleFunc("POST /auth/token", s.handleToken)
	}
	mux.Handle("POST /enrich", enrich)

	return middleware.Logger(s.logger)(mux)
}

// Handler exposes the configured router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
