package dev

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pathwayerrors "github.com/pathway-dev/pathway/internal/errors"
	"github.com/pathway-dev/pathway/pkg/definition"
	"github.com/pathway-dev/pathway/pkg/router"
)

// ServerConfig configures the inspector server.
type ServerConfig struct {
	// Addr is the listen address (default: "127.0.0.1:8520").
	Addr string

	// Source supplies the route definition document.
	Source definition.Source

	// Watch lists files or directories to poll for changes. Empty
	// disables watching; the table then loads once at startup.
	Watch []string

	// Logger is the server logger (default: slog.Default()).
	Logger *slog.Logger
}

// Server is the route inspector. It keeps the current router behind an
// atomic pointer so HTTP handlers never see a half-built table; rebuilds
// swap the pointer only on success.
type Server struct {
	config  ServerConfig
	logger  *slog.Logger
	current atomic.Pointer[router.Router]
	inspect *InspectServer
	watcher *Watcher
}

// NewServer creates an inspector server.
func NewServer(config ServerConfig) *Server {
	if config.Addr == "" {
		config.Addr = "127.0.0.1:8520"
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config:  config,
		logger:  logger.With("component", "dev"),
		inspect: NewInspectServer(),
	}
	if len(config.Watch) > 0 {
		s.watcher = NewWatcher(WatcherConfig{Paths: config.Watch})
	}
	return s
}

// Router returns the current route table, or nil before the first
// successful load.
func (s *Server) Router() *router.Router {
	return s.current.Load()
}

// Reload loads the definition document and swaps in a freshly built
// router. On failure the previous table keeps serving and the error is
// pushed to inspector clients.
func (s *Server) Reload(ctx context.Context) error {
	defs, err := definition.Load(ctx, s.config.Source)
	if err == nil {
		var r *router.Router
		r, err = router.Build(defs, router.WithLogger(s.logger))
		if err == nil {
			s.current.Store(r)
			s.logger.Info("route table loaded", "routes", r.Len())
			s.inspect.NotifyRoutes(r.Routes())
			return nil
		}
	}

	s.logger.Error("route table rebuild failed", "error", err)
	s.inspect.NotifyError(pathwayerrors.FromRouting(err).FormatCompact())
	return err
}

// Start loads the table, begins watching, and serves until the context
// is cancelled. The initial load must succeed; later rebuild failures
// only keep the previous table.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		return err
	}

	if s.watcher != nil {
		s.watcher.OnChange(func(c Change) {
			s.logger.Debug("definition change detected", "path", c.Path, "removed", c.Removed)
			s.Reload(ctx)
		})
		go s.watcher.Start(ctx)
		defer s.watcher.Stop()
	}

	srv := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("inspector listening", "addr", s.config.Addr)

	select {
	case <-ctx.Done():
		s.inspect.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler builds the inspector's HTTP mux.
func (s *Server) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)

	mux.Get("/routes", s.handleRoutes)
	mux.Get("/match", s.handleMatch)
	mux.Get("/assemble", s.handleAssemble)
	mux.Get("/ws", s.inspect.HandleWebSocket)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *Server) handleRoutes(w http.ResponseWriter, req *http.Request) {
	r := s.Router()
	if r == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "route table not loaded"})
		return
	}
	writeJSON(w, http.StatusOK, r.Routes())
}

type matchResponse struct {
	Matched bool              `json:"matched"`
	Route   string            `json:"route,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

func (s *Server) handleMatch(w http.ResponseWriter, req *http.Request) {
	r := s.Router()
	if r == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "route table not loaded"})
		return
	}
	path := req.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing path parameter"})
		return
	}

	m, ok := r.Match(path)
	if !ok {
		writeJSON(w, http.StatusOK, matchResponse{Matched: false})
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{
		Matched: true,
		Route:   m.Route.Name(),
		Params:  m.Params,
	})
}

func (s *Server) handleAssemble(w http.ResponseWriter, req *http.Request) {
	r := s.Router()
	if r == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "route table not loaded"})
		return
	}
	query := req.URL.Query()
	name := query.Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing name parameter"})
		return
	}

	params := make(map[string]string)
	for k, vs := range query {
		if k == "name" || len(vs) == 0 {
			continue
		}
		params[k] = vs[0]
	}

	path, err := r.Assemble(name, params)
	if err != nil {
		pe := pathwayerrors.FromRouting(err)
		status := http.StatusUnprocessableEntity
		if pe.Code == "E021" {
			status = http.StatusNotFound
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(pe.FormatJSON()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
