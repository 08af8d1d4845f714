// Package workers runs a set of long-lived, context-bound jobs side by side.
// The first job to return stops the others.
package workers

import "context"

// Worker blocks in Run until its work is done or ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
