package response

import (
	"fmt"
	"net/http"
)

// HTTPError is the short-circuit signal raised by Abort. It carries a
// fully-built Response and is recovered at the dispatcher's handler call
// site, where the Response is returned as-is without further
// normalization.
type HTTPError struct {
	Response *Response
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s", e.Response.Status())
}

// StatusCode returns the carried response's status code.
func (e *HTTPError) StatusCode() int {
	return e.Response.StatusCode
}

// Abort stops handler execution immediately with a plain-text response
// for the given status code. The optional message overrides the default
// body (the status's reason phrase).
//
// Abort panics with an *HTTPError; the dispatcher recovers it. Calling it
// outside a dispatched handler propagates the panic to the caller.
func Abort(code int, message ...string) {
	body := http.StatusText(code)
	if len(message) > 0 {
		body = message[0]
	}
	AbortWith(New(body,
		WithStatus(code),
		WithContentType("text/plain; charset=utf-8"),
	))
}

// AbortWith stops handler execution immediately with the given response.
func AbortWith(resp *Response) {
	panic(&HTTPError{Response: resp})
}
