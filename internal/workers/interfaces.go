// Package workers runs the client's background jobs as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine bound to
// ctx. Stop blocks until that goroutine has exited and must be safe to call
// on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
