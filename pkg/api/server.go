// Package api serves a placement engine over HTTP.
//
// All routes live under /v1 and speak JSON. A single [placement.Engine] backs
// the server; requests are serialized with a mutex because the engine is not
// safe for concurrent use. Errors are returned as {"code", "message"} with a
// status derived from the error code.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridplace/pkg/observability"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server exposes one engine over HTTP.
type Server struct {
	mu     sync.Mutex
	engine *placement.Engine
	logger *log.Logger
	router chi.Router
}

// NewServer returns a server backed by engine. A nil logger discards output.
func NewServer(engine *placement.Engine, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{engine: engine, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/transform/pixel", s.handlePixelToGrid)
		r.Post("/transform/grid", s.handleGridToPixel)
		r.Post("/snap", s.handleSnap)

		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Get("/widgets", s.handleGetWidgets)
		r.Put("/widgets", s.handlePutWidgets)

		r.Post("/suggestions", s.handleSuggestions)
		r.Post("/predict", s.handlePredict)
		r.Post("/history", s.handleAddHistory)
		r.Get("/history/{id}", s.handleGetHistory)
		r.Get("/stability", s.handleStability)
	})
	return r
}

// logRequests logs each request at debug level, or warn for errors, and
// reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		logf := s.logger.Debug
		if status >= http.StatusBadRequest {
			logf = s.logger.Warn
		}
		logf("request", "method", r.Method, "route", route, "status", status, "duration", elapsed)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, elapsed)
	})
}

// locked runs fn with the engine lock held.
func (s *Server) locked(fn func(e *placement.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}
