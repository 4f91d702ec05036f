// Package server exposes the task board over HTTP: the HTML listing page, the
// form mutation endpoint and a small JSON API.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/logging"
)

//go:embed static
var staticFS embed.FS

// Server serves the task board
type Server struct {
	api    api.BusinessAPI
	config config.ServerConfig
	logger *slog.Logger
	static fs.FS
}

// New creates a server. A nil logger discards log output.
func New(businessAPI api.BusinessAPI, cfg config.ServerConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	static, err := staticFiles(cfg.StaticDir)
	if err != nil {
		return nil, err
	}

	return &Server{
		api:    businessAPI,
		config: cfg,
		logger: logger,
		static: static,
	}, nil
}

// staticFiles returns the embedded assets, or dir when one is configured
func staticFiles(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("static directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static directory: %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(staticFS, "static")
}

// Handler returns the routed handler wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /update", s.handleUpdate)
	mux.HandleFunc("GET /hello/{name}", s.handleHello)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/actions", s.handleAction)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	files := http.FileServerFS(s.static)
	mux.Handle("GET /css/", files)
	mux.Handle("GET /js/", files)

	return s.requestLogger(s.recoverer(mux))
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", listener.Addr().String())
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
