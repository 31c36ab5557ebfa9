package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/handler"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if w == nil {
		w = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
		return
	}
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if err := s.workers.Run(gctx); err != nil {
		return fmt.Errorf("error starting workers: %w", err)
	}

	g.Go(s.httpServer.RunServer)

	// stop the listener once a signal arrives or serving failed
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down HTTP server")
		return s.httpServer.Shutdown(context.WithoutCancel(gctx))
	})

	return g.Wait()
}
