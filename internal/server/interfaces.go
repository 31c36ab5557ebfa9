package server

import "context"

// Server defines the lifecycle contract of the process managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received.
	RunServer()

	// Run serves until ctx is done or the listener fails, then shuts down.
	Run(ctx context.Context) error
}
