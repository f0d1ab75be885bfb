// Package handler defines the view function signature and the
// per-invocation context handed to it.
//
// A Context bundles the worker's execution-context scope with the path
// variables bound for this invocation (rule defaults merged with converted
// dynamic segments). Current-request and current-app accessors delegate to
// the scope and fail with its unbound errors when nothing is pushed.
package handler
