// Package workers runs the background jobs of the dashboard: the session
// expiry watch and the draft autosave. Workers share the lifetime of the
// context passed to [Workers.Run].
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
