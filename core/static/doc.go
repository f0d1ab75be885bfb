// Package static implements the static-file collaborator: it resolves a
// request path against a root folder and returns the file bytes with a
// guessed content type, or a 404 response when the file is missing.
//
// Paths are cleaned and checked against the root so a request cannot
// escape the static folder via traversal segments.
package static
