package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
type Server interface {
	// RunServer binds the listeners and serves requests until ctx is
	// cancelled or a listener fails, then shuts down gracefully. Bind errors
	// are returned before anything is served.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the listeners, waiting for in-flight
	// requests until ctx is done.
	Shutdown(ctx context.Context) error
}
