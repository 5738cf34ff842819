// Package api serves the render pipeline over HTTP.
//
// # Endpoints
//
//	POST /v1/render   render a spec; ?raw=<format> returns one artifact as is
//	GET  /v1/example  the example spec
//	GET  /healthz     liveness probe
//	GET  /version     build information
//
// A render request carries the spec and any pipeline options:
//
//	{
//	  "spec": {"kind": "flat", "matrix": [["1", "2"], ["3", "4"]]},
//	  "formats": ["tikz", "json"],
//	  "grid_color": "gray"
//	}
//
// Errors are returned as {"code": ..., "message": ...} with status 400 for
// invalid input (including geometry errors), 413 for oversized bodies and
// 500 otherwise. Every response carries an X-Request-ID header.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// DefaultMaxBodyBytes bounds the size of a render request.
const DefaultMaxBodyBytes = 1 << 20

// Server is the HTTP front end of a [pipeline.Runner].
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	maxBody  int64
	shutdown time.Duration
}

// Option configures a [Server].
type Option func(*Server)

// WithMaxBodyBytes sets the request body limit.
func WithMaxBodyBytes(n int64) Option { return func(s *Server) { s.maxBody = n } }

// WithShutdownTimeout sets how long ListenAndServe waits for in-flight
// requests once its context is canceled.
func WithShutdownTimeout(d time.Duration) Option { return func(s *Server) { s.shutdown = d } }

// NewServer creates a server rendering with runner. A nil logger discards
// output.
func NewServer(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		maxBody:  DefaultMaxBodyBytes,
		shutdown: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/version", s.version)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/example", s.example)
		r.With(middleware.RequestSize(s.maxBody)).Post("/render", s.render)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed")
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
