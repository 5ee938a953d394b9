// Package server runs the application's HTTP listeners.
//
// It owns the API listener and the optional Prometheus listener, binds both
// before serving so that bind errors surface at startup, and shuts them down
// gracefully when the run context is cancelled.
package server
