package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"go.uber.org/zap"
)

// Server wraps the HTTP server.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// New creates a server for the given generator and question source.
func New(addr string, source checklist.QuestionSource, gen *checklist.Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(NewHandler(source, gen, logger), logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("HTTP server starting", zap.String("address", s.srv.Addr))

	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("HTTP server shutdown error", zap.Error(err))
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}
