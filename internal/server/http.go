package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
)

type httpServer struct {
	name string

	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name string, handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
		logger: logger,
	}
}

// listen binds the TCP listener.
func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w on %s for %s server: %w", errListening, h.server.Addr, h.name, err)
	}
	h.listener = listener
	return nil
}

// serve blocks serving on the bound listener. A server stopped by Shutdown
// returns nil.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w for %s server: %w", errServing, h.name, err)
	}
	return nil
}

// addr returns the bound address, or the configured one before listen.
func (h *httpServer) addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.server.Addr
}

// port returns the port part of addr.
func (h *httpServer) port() string {
	_, port, err := net.SplitHostPort(h.addr())
	if err != nil {
		return h.addr()
	}
	return port
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("server", h.name).Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down %s server: %w", h.name, err)
	}
	return nil
}
