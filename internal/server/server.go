// Package server exposes the rendering pipeline over HTTP.
//
// Routes:
//
//	POST /v1/render   render the Excalidraw document in the request body
//	GET  /healthz     liveness probe
//	GET  /version     build information
//
// Render options are passed as query parameters (format, background, dpi,
// quality, legacy, precision). The response body is the artifact itself;
// failures are reported as JSON with the error code.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/roughdraw/pkg/pipeline"
)

// Defaults for Options.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 10 << 20

	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr         string
	MaxBodyBytes int64
	Logger       *log.Logger
}

// Server serves render requests from a shared pipeline runner.
type Server struct {
	runner *pipeline.Runner
	opts   Options
	router chi.Router
}

// New creates a server backed by runner. Zero option fields take defaults.
func New(runner *pipeline.Runner, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{runner: runner, opts: opts}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/v1/render", s.handleRender)
	return r
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully,
// letting in-flight renders finish.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.opts.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
