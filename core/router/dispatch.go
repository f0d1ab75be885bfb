package router

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/miroslava-go/miroslava/core/appctx"
	"github.com/miroslava-go/miroslava/core/handler"
	"github.com/miroslava-go/miroslava/core/request"
	"github.com/miroslava-go/miroslava/core/response"
)

// StaticFunc is the static-file collaborator: given a request path it
// returns a byte response with a guessed content type, or a 404. The
// dispatcher treats it as an opaque fallback for any path containing a
// dot.
type StaticFunc func(path string) *response.Response

// Dispatcher matches requests against the table and invokes the bound
// views. It never returns an error for ordinary routing outcomes; only an
// unexpected view fault (panic or normalization failure) crosses this
// boundary, for the connection handler to turn into a 500.
type Dispatcher struct {
	table  *Table
	static StaticFunc
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithStatic installs the static-file collaborator.
func WithStatic(fn StaticFunc) DispatcherOption {
	return func(d *Dispatcher) { d.static = fn }
}

// NewDispatcher creates a dispatcher over the given table.
func NewDispatcher(table *Table, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{table: table}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch resolves one request to a response, in this exact order:
//
//  1. Paths containing a "." that do not end in "/" are delegated to the
//     static collaborator; dynamic rules never shadow what looks like a
//     file request.
//  2. Exact rules, in registration order: the first rule whose pattern
//     equals the path decides the outcome (405 on method mismatch).
//  3. Compiled rules, in registration order: the first structural match
//     decides; 405 on method mismatch, 404 on converter failure.
//  4. No rule matched: 404.
func (d *Dispatcher) Dispatch(scope *appctx.Scope, req *request.Request) (*response.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if d.static != nil && strings.Contains(req.Path, ".") && !strings.HasSuffix(req.Path, "/") {
		return d.static(req.Path), nil
	}

	// Pass 1: exact rules only.
	for _, rule := range d.table.Rules() {
		if rule.IsDynamic() || req.Path != rule.Pattern {
			continue
		}
		if !rule.AllowsMethod(req.Method) {
			return methodNotAllowed(), nil
		}
		return d.invoke(scope, rule, nil)
	}

	// Pass 2: compiled rules only.
	for _, rule := range d.table.Rules() {
		if !rule.IsDynamic() {
			continue
		}
		raw, ok := rule.matchPath(req.Path)
		if !ok {
			continue
		}
		if !rule.AllowsMethod(req.Method) {
			return methodNotAllowed(), nil
		}
		captured, err := rule.convertCaptures(raw)
		if err != nil {
			// A syntactically matching but semantically invalid
			// segment is a routing miss, not a server fault.
			return notFound(), nil
		}
		return d.invoke(scope, rule, captured)
	}

	return notFound(), nil
}

// invoke calls the view bound to the rule's endpoint with the rule's
// defaults merged under the converted captures, then normalizes the
// return value. An abort raised anywhere in the view is recovered here
// and its response returned as-is; any other panic is wrapped and
// reported as an error.
func (d *Dispatcher) invoke(scope *appctx.Scope, rule *Rule, captured map[string]any) (resp *response.Response, err error) {
	view, ok := d.table.View(rule.Endpoint)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNilView, rule.Endpoint)
	}

	params := make(handler.Params, len(rule.Defaults)+len(captured))
	for k, v := range rule.Defaults {
		params[k] = v
	}
	for k, v := range captured {
		params[k] = v
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if httpErr, ok := p.(*response.HTTPError); ok {
			// The carried response bypasses normalization entirely.
			resp = httpErr.Response
			err = nil
			return
		}
		resp = nil
		err = &PanicError{value: p, stack: debug.Stack()}
	}()

	rv := view(handler.NewContext(scope, params))
	return response.Make(rv)
}

func notFound() *response.Response {
	return response.New(http.StatusText(http.StatusNotFound),
		response.WithStatus(http.StatusNotFound))
}

func methodNotAllowed() *response.Response {
	return response.New(http.StatusText(http.StatusMethodNotAllowed),
		response.WithStatus(http.StatusMethodNotAllowed))
}

// PanicError wraps a panic escaping a view function, carrying the stack
// captured at the panic point.
type PanicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured at the panic point.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is and errors.As to reach a wrapped error value.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
