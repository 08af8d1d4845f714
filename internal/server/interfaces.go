package server

import "context"

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer blocks until ctx is done, a stop signal is received or
	// the listener fails. A graceful stop returns nil.
	RunServer(ctx context.Context) error

	Shutdown(ctx context.Context) error
}
