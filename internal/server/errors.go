package server

import "errors"

var (
	errNoHTTPHandler = errors.New("server: no http handler to serve")
	errNoHTTPAddress = errors.New("server: http address is not configured")
)
