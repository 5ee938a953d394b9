package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/handler"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/go-chi/chi/v5"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer:      newHTTPServer("api", handlers.HTTP.Init(), cfg.Address(), logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.MetricsAddress != "" && handlers.Metrics != nil {
		router := chi.NewRouter()
		router.Method(http.MethodGet, "/metrics", handlers.Metrics.Handler())
		servers.metricsServer = newHTTPServer("metrics", router, cfg.MetricsAddress, logger)
	}

	return servers, nil
}

func (s *server) servers() []*httpServer {
	if s.metricsServer == nil {
		return []*httpServer{s.httpServer}
	}
	return []*httpServer{s.httpServer, s.metricsServer}
}

func (s *server) RunServer(ctx context.Context) error {
	// bind everything first so that a taken port fails startup
	for _, srv := range s.servers() {
		if err := srv.listen(); err != nil {
			s.closeListeners()
			return err
		}
	}

	s.logger.Info().
		Str("port", s.httpServer.port()).
		Str("address", s.httpServer.addr()).
		Msg("HTTP server listening")
	if s.metricsServer != nil {
		s.logger.Info().Str("address", s.metricsServer.addr()).Msg("metrics server listening")
	}

	servers := s.servers()
	serveErrors := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			serveErrors <- srv.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErrors:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// closeListeners releases listeners bound by a RunServer that failed to bind
// all of them.
func (s *server) closeListeners() {
	for _, srv := range s.servers() {
		if srv.listener != nil {
			_ = srv.listener.Close()
		}
	}
}
