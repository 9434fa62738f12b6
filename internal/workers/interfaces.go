// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Implementations are expected to return from Run quickly, spawning
// goroutines internally, and to block in Stop until those goroutines have
// exited.
type Worker interface {
	// Run starts the worker's execution.
	Run()

	// Stop terminates the worker and waits for its shutdown.
	Stop()
}
