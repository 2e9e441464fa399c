// Package api exposes the command builder over HTTP: clients post a
// parameter mapping and get back the assembled ffmpeg command line.
package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/user/ffcmd/internal/config"
	"github.com/user/ffcmd/internal/ffmpeg"
	"github.com/user/ffcmd/internal/logging"
)

// Server is the Huma v2 API server around the command adapter.
type Server struct {
	api        huma.API
	mux        *http.ServeMux
	httpServer *http.Server
	metrics    *metrics
	logger     *slog.Logger

	mu      sync.RWMutex
	adapter *ffmpeg.Adapter
}

// NewServer creates the API server with all routes registered.
func NewServer(cfg config.Config) *Server {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("ffcmd API", "1.0.0")
	humaConfig.Info.Description = "FFmpeg command construction API"
	// Empty servers list makes OpenAPI use relative paths, working with any host
	humaConfig.Servers = []*huma.Server{}

	server := &Server{
		api:     humago.New(mux, humaConfig),
		mux:     mux,
		metrics: newMetrics(),
		logger:  logging.GetLogger("api"),
		adapter: ffmpeg.NewAdapter(cfg, ffmpeg.WithLogger(logging.GetLogger("ffmpeg"))),
	}

	mux.Handle("GET /metrics", server.metrics.handler())
	server.registerRoutes()

	return server
}

// SetConfig swaps the adapter for a freshly loaded configuration. Used by
// the config watcher in serve mode.
func (s *Server) SetConfig(cfg config.Config) {
	s.mu.Lock()
	s.adapter = ffmpeg.NewAdapter(cfg, ffmpeg.WithLogger(logging.GetLogger("ffmpeg")))
	s.mu.Unlock()
	s.logger.Info("Adapter reconfigured", "binary", cfg.Binary, "threads", cfg.Threads)
}

func (s *Server) currentAdapter() *ffmpeg.Adapter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adapter
}

// Start starts the HTTP server on the specified address.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting ffcmd API server", "addr", addr)
	s.logger.Info("OpenAPI documentation available", "url", "http://"+addr+"/docs")

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.logger.Info("Stopping API server")
	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}

// API returns the Huma API instance, used by tests.
func (s *Server) API() huma.API {
	return s.api
}
