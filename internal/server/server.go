package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/auth"
	"github.com/hongminglow/dataflow-be/internal/config"
	"github.com/hongminglow/dataflow-be/internal/http/handlers"
	"github.com/hongminglow/dataflow-be/internal/metrics"
	"github.com/hongminglow/dataflow-be/internal/middleware"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, a *app.App, m *metrics.Metrics, log *zap.Logger) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, a, m, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// Handler builds the routed, middleware-wrapped API handler.
func Handler(cfg config.Config, a *app.App, m *metrics.Metrics, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	handlers.NewHealthHandler(time.Now(), cfg.Storage.Driver).Register(mux)
	authHandler := handlers.NewAuthHandler(a, tokens, log)
	authHandler.Register(mux)
	handlers.NewUserHandler(a, log).Register(mux)
	handlers.NewFormHandler(a, log).Register(mux)
	handlers.NewRecordHandler(a, log).Register(mux)
	handlers.NewActivityHandler(a, log).Register(mux)
	handlers.NewSettingsHandler(a, log).Register(mux)
	mux.Handle("GET /metrics", m.Handler())

	open := map[string]bool{"/health": true, "/metrics": true}
	for _, p := range authHandler.PublicPaths() {
		open[p] = true
	}
	public := func(r *http.Request) bool { return open[r.URL.Path] }

	var handler http.Handler = middleware.RequireSession(tokens, public, mux)
	handler = middleware.Metrics(m, mux, handler)
	handler = middleware.Recover(log, handler)
	handler = middleware.Logging(log, handler)
	return middleware.CORS(middleware.CORSPolicy{Origins: cfg.CORSOrigins, MaxAge: cfg.CORSMaxAge}, handler)
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
