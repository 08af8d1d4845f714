// Package http implements the REST API of the vedicas document store.
//
// Routes are registered on a chi router in routes.go. Every request passes
// through trace-id, access-log and gzip middlewares; everything except auth
// and version also requires a bearer token. Handlers decode the body, pull
// the owner id from the context and delegate to the service layer.
package http
