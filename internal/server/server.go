// Package server exposes the hypercube pipeline over HTTP.
//
// # Endpoints
//
//	GET  /healthz        build information
//	POST /v1/partition   document body → partition JSON (rectangles and headers)
//	POST /v1/render      document body → one rendered artifact
//
// The request body is a document in any of the formats pkg/io reads. The
// format comes from the ?input= query parameter or, failing that, the
// Content-Type header; JSON is assumed when neither names one. Partition
// options are passed as query parameters (strategy, merge, verify) and
// /v1/render takes ?format= (default tex).
//
// Every response carries an X-Run-ID header. Errors are JSON objects with
// "code" and "error" fields; document errors map to 422, bad options to 400
// and everything else to 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hypercube/pkg/pipeline"
)

const (
	// maxBodyBytes bounds the size of an uploaded document.
	maxBodyBytes = 4 << 20

	// requestTimeout bounds a single pipeline run.
	requestTimeout = 60 * time.Second

	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API. It is safe for concurrent use.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by runner. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(runID)
	r.Use(observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/partition", s.handlePartition)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
