// Package router implements the URL rule registry and the two-pass
// dispatch algorithm.
//
// A Rule binds one pattern to an endpoint with a set of allowed methods
// and optional default path variables. Patterns may contain dynamic
// segments, <name> for any single segment or <int:name> for digits only,
// compiled once at registration into a matcher plus a name-to-converter
// table.
//
// Dispatch is deterministic: paths that look like file requests go to the
// static collaborator first; then exact rules are tried in registration
// order, then compiled rules. The first structural match decides the
// outcome: a method mismatch on it yields 405 without falling through,
// and a converter failure on a captured segment counts as no match (404),
// never a server error.
package router
