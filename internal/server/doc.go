// Package server runs the document store's HTTP server until the context
// is cancelled or a stop signal arrives, then shuts it down gracefully.
package server
