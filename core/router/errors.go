package router

import "errors"

var (
	// Registration errors
	ErrInvalidPattern = errors.New("url pattern must begin with a slash")
	ErrNilView        = errors.New("no view registered for endpoint")
	ErrDuplicateParam = errors.New("duplicate parameter name in pattern")
	ErrInvalidRegexp  = errors.New("invalid pattern regexp")

	// Dispatch errors
	ErrNilRequest = errors.New("nil request")
)
