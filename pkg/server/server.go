// Package server exposes layout sessions over HTTP.
//
// Routes:
//
//	GET    /healthz                  liveness and version
//	POST   /sessions                 create a canvas session
//	GET    /sessions/{id}            session info
//	DELETE /sessions/{id}            drop a session
//	PUT    /sessions/{id}/topics     lay out a new topic list
//	GET    /sessions/{id}/layout     latest snapshot
//	GET    /sessions/{id}/preview    latest snapshot as SVG or PNG
//	POST   /sessions/{id}/reset      clear the canvas
//
// PUT /topics accepts the same documents as topic files: a bare JSON array
// of topics or an object with a "topics" list. The viewport is taken from
// the width and height query parameters; when absent the session keeps its
// previous viewport. Errors are JSON objects with a machine-readable code.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ripple/pkg/cache"
	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/session"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 4 << 20

// Options configures a Server.
type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	CleanupInterval time.Duration
	// Viewport is used for a session's first update when the request
	// carries none.
	Viewport engine.Viewport
	// PreviewCache holds rendered previews. Nil disables caching.
	PreviewCache cache.Cache
	// PreviewTTL bounds how long a cached preview is served.
	PreviewTTL time.Duration
}

// Server serves the layout API.
type Server struct {
	store  *session.MemoryStore
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New builds a server over store.
func New(store *session.MemoryStore, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Viewport == (engine.Viewport{}) {
		opts.Viewport = engine.DefaultViewport()
	}
	if opts.PreviewCache == nil {
		opts.PreviewCache = cache.NewNullCache()
	}
	s := &Server{store: store, logger: logger, opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/topics", s.handlePutTopics)
			r.Get("/layout", s.handleGetLayout)
			r.Get("/preview", s.handlePreview)
			r.Post("/reset", s.handleReset)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Expired sessions are swept in the background.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.store.RunCleanup(ctx, s.opts.CleanupInterval)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving layout API", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
