package appctx

import "github.com/miroslava-go/miroslava/core/request"

// AppContext holds the application instance and the per-context value
// namespace. The application is stored untyped so this package stays free
// of a dependency on the application type; callers type-assert on access.
type AppContext struct {
	App any
	G   *Globals
}

// NewAppContext creates an application context for app with a fresh
// value namespace.
func NewAppContext(app any) *AppContext {
	return &AppContext{App: app, G: NewGlobals()}
}

// RequestContext holds the parsed request, an optional session mapping,
// and the request's correlation ID.
type RequestContext struct {
	Request *request.Request
	Session map[string]any
	ID      string
}

// NewRequestContext creates a request context. A nil session is kept nil;
// Session on the scope reports it as-is.
func NewRequestContext(req *request.Request, session map[string]any) *RequestContext {
	return &RequestContext{Request: req, Session: session}
}

// Scope is the execution-context holder for one worker. It owns one stack
// of application contexts and one of request contexts, which grow and
// shrink independently.
type Scope struct {
	app Stack[*AppContext]
	req Stack[*RequestContext]
}

// NewScope creates a scope with both stacks empty.
func NewScope() *Scope {
	return &Scope{}
}

// PushApp pushes an application context.
func (s *Scope) PushApp(ctx *AppContext) {
	s.app.Push(ctx)
}

// PopApp removes and returns the topmost application context.
func (s *Scope) PopApp() (*AppContext, error) {
	return s.app.Pop()
}

// PushRequest pushes a request context.
func (s *Scope) PushRequest(ctx *RequestContext) {
	s.req.Push(ctx)
}

// PopRequest removes and returns the topmost request context.
func (s *Scope) PopRequest() (*RequestContext, error) {
	return s.req.Pop()
}

// AppContext returns the current application context, or ErrAppUnbound.
func (s *Scope) AppContext() (*AppContext, error) {
	if ctx, ok := s.app.Top(); ok {
		return ctx, nil
	}
	return nil, ErrAppUnbound
}

// App returns the current application instance, or ErrAppUnbound.
func (s *Scope) App() (any, error) {
	ctx, err := s.AppContext()
	if err != nil {
		return nil, err
	}
	return ctx.App, nil
}

// G returns the current application context's value namespace,
// or ErrAppUnbound.
func (s *Scope) G() (*Globals, error) {
	ctx, err := s.AppContext()
	if err != nil {
		return nil, err
	}
	return ctx.G, nil
}

// RequestContext returns the current request context, or ErrRequestUnbound.
func (s *Scope) RequestContext() (*RequestContext, error) {
	if ctx, ok := s.req.Top(); ok {
		return ctx, nil
	}
	return nil, ErrRequestUnbound
}

// Request returns the current request, or ErrRequestUnbound.
func (s *Scope) Request() (*request.Request, error) {
	ctx, err := s.RequestContext()
	if err != nil {
		return nil, err
	}
	return ctx.Request, nil
}

// Session returns the current request's session mapping, or
// ErrRequestUnbound. The mapping may be nil when no session was attached.
func (s *Scope) Session() (map[string]any, error) {
	ctx, err := s.RequestContext()
	if err != nil {
		return nil, err
	}
	return ctx.Session, nil
}
