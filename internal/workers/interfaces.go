// Package workers provides abstractions for managing and running
// background workers of the admin client.
// It defines the Worker interface, a Workers aggregate that starts several
// workers in a unified way and the RefreshWorker that keeps the cached
// schema current.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and stop them
// once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Refresher is refreshed periodically by a [RefreshWorker].
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a function to [Refresher].
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}
