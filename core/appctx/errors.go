package appctx

import "errors"

var (
	// ErrEmptyStack is returned by Pop when the stack has no contexts.
	ErrEmptyStack = errors.New("popped from an empty context stack")

	// ErrAppUnbound is returned when current-app state is read while no
	// application context is pushed on the calling scope.
	ErrAppUnbound = errors.New("working outside of application context")

	// ErrRequestUnbound is returned when current-request state is read
	// while no request context is pushed on the calling scope.
	ErrRequestUnbound = errors.New("working outside of request context")
)
