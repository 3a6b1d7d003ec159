package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"mediaprobe/internal/api"
	"mediaprobe/internal/config"
	"mediaprobe/internal/logging"
)

const component = "http-server"

// Server is the HTTP front end for api.Service.
type Server struct {
	bind            string
	maxBodyBytes    int64
	apiToken        string
	shutdownTimeout time.Duration
	svc             *api.Service
	logger          *slog.Logger

	handler http.Handler
	server  *http.Server

	mu       sync.Mutex
	listener net.Listener
	stopOnce sync.Once
	done     chan struct{}
}

// New builds a server from configuration. The returned server is not listening
// until Start is called.
func New(cfg *config.Config, svc *api.Service, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: configuration is required")
	}
	if svc == nil {
		return nil, errors.New("server: service is required")
	}
	s := &Server{
		bind:            cfg.Server.Bind,
		maxBodyBytes:    cfg.Server.MaxBodyBytes,
		apiToken:        cfg.Server.APIToken,
		shutdownTimeout: cfg.ShutdownTimeout(),
		svc:             svc,
		logger:          logging.NewComponentLogger(logger, component),
		done:            make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/video/info", s.requireToken(s.handleInfo))
	mux.HandleFunc("/api/video/download", s.requireToken(s.handleVideoDownload))
	mux.HandleFunc("/api/audio/download", s.requireToken(s.handleAudioDownload))
	mux.HandleFunc("/api/video/thumbnail", s.requireToken(s.handleThumbnail))
	mux.HandleFunc("/api/video/call-preview", s.requireToken(s.handleCallPreview))

	s.handler = s.withRequestID(s.withAccessLog(mux))
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening and serving in the background. The server shuts down
// gracefully once ctx is done or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.done:
		}
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Done is closed when the server has stopped serving.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Stop shuts the server down, giving in-flight requests the configured grace
// period. It is safe to call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("api server shutdown incomplete", logging.Error(err))
			_ = s.server.Close()
		}
		s.logger.Info("api server stopped")
	})
}
