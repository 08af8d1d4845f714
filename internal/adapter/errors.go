package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrInvalidBaseURL is returned by constructors given an unusable address.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("error decoding response")

	// ErrCacheMiss is returned by [Cache.Get] for absent keys.
	ErrCacheMiss = errors.New("cache miss")
)
