// Package server exposes the parse pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payment-intent-parser/internal/cache"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/parser"
)

// Server hosts the parse API plus health and metrics endpoints.
type Server struct {
	log     logger.Logger
	parser  *parser.Service
	cache   *cache.ParseCache
	version string

	httpServer *http.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithCache installs the optional read-through parse cache.
func WithCache(c *cache.ParseCache) Option {
	return func(s *Server) { s.cache = c }
}

// New builds the HTTP server for the given listen address.
func New(addr, version string, svc *parser.Service, log logger.Logger, opts ...Option) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Server{
		log:     log,
		parser:  svc,
		version: version,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/parse", s.handleParse)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRequestID(s.withLogging(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured handler chain. Test hook.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
