package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/puzzle-be/internal/auth"
	"github.com/hongminglow/puzzle-be/internal/config"
	"github.com/hongminglow/puzzle-be/internal/http/handlers"
	"github.com/hongminglow/puzzle-be/internal/logging"
	"github.com/hongminglow/puzzle-be/internal/middleware"
	"github.com/hongminglow/puzzle-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger logging.Logger) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, store, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// NewHandler builds the full routing tree without binding a listener.
func NewHandler(cfg config.Config, store storage.Store, logger logging.Logger) http.Handler {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokens, auth.Bcrypt{}, logger).Register(mux)
	gate := func(next http.Handler) http.Handler {
		return middleware.RequireAuth(tokens, logger, next)
	}
	handlers.NewQuestionHandler(store, gate, logger).Register(mux)

	return middleware.RequestID(middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, mux)))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
