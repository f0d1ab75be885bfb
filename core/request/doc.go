// Package request provides the immutable snapshot of one inbound HTTP
// message.
//
// The wire parser produces an Environ, a flat CGI-style mapping of the
// request line and header block, and New turns it into a Request exposing
// the method, path, query string, a case-insensitive multi-valued header
// view, the remote address, and the raw body bytes.
//
// Query arguments, form bodies, and JSON bodies are parsed lazily and
// cached on first access; a Request is never mutated after construction.
package request
