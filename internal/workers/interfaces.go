// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Run must return once the worker is started; the work itself continues in
// goroutines owned by the worker until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    go process(ctx)
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
