// Package server wires and runs the UniBrain HTTP server together with its
// background workers, including signal handling and graceful shutdown.
package server
