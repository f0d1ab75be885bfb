package webserver

import "errors"

var (
	// ErrBindFailed is returned when the listening socket cannot be bound.
	ErrBindFailed = errors.New("failed to bind listening socket")

	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrNilDispatch is returned when no dispatch function is configured.
	ErrNilDispatch = errors.New("dispatch function is required")
)
