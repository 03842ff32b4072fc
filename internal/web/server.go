package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"movieshelf/internal/api"
	"movieshelf/internal/config"
	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
	"movieshelf/internal/views"
)

// Server serves the catalogue pages and the JSON API.
type Server struct {
	bind     string
	token    string
	logger   *slog.Logger
	access   *slog.Logger
	store    *movies.Store
	svc      *api.MovieService
	renderer *views.Renderer

	lockPath string
	lock     *flock.Flock

	handler  http.Handler
	listener net.Listener
	server   *http.Server
}

// New constructs a server around an already seeded store.
func New(cfg *config.Config, store *movies.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("web server requires config and store")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server.bind is empty")
	}
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	srv := &Server{
		bind:     bind,
		token:    cfg.Server.APIToken,
		logger:   logging.NewComponentLogger(logger, "web-server"),
		access:   logging.NewComponentLogger(logger, "http-access"),
		store:    store,
		svc:      api.NewMovieService(store),
		renderer: renderer,
	}
	if strings.TrimSpace(cfg.Paths.StateDir) != "" {
		srv.lockPath = cfg.LockPath()
		srv.lock = flock.New(srv.lockPath)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handlePage)
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/movies", srv.handleMovies)
	mux.HandleFunc("/api/movies/", srv.handleMovie)
	srv.handler = srv.withRequestID(srv.withAccessLog(mux))

	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr reports the bound listener address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

// Start acquires the instance lock, binds the listener and serves in the
// background until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.lock != nil {
		ok, err := s.lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return fmt.Errorf("another movieshelf server is already running (lock %s)", s.lockPath)
		}
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		s.unlock()
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("http server listening",
		logging.String("address", listener.Addr().String()),
		logging.Int("movies", s.store.Len()),
		logging.Bool("api_auth", s.token != ""),
	)
	return nil
}

// Stop shuts the server down and releases the instance lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	s.unlock()
}

func (s *Server) unlock() {
	if s.lock == nil || !s.lock.Locked() {
		return
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release server lock", logging.Error(err))
	}
}
