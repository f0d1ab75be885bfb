package handler

import (
	"github.com/miroslava-go/miroslava/core/appctx"
	"github.com/miroslava-go/miroslava/core/request"
)

// Params holds the path variables bound for one invocation: the rule's
// defaults merged with converted dynamic segment captures. Values carry
// their converted type (int for <int:name>, string otherwise).
type Params map[string]any

// Context is handed to a view function for one dispatch.
type Context struct {
	scope  *appctx.Scope
	params Params
}

// NewContext creates an invocation context. A nil params map is treated
// as empty.
func NewContext(scope *appctx.Scope, params Params) *Context {
	if params == nil {
		params = Params{}
	}
	return &Context{scope: scope, params: params}
}

// Param returns the bound value for name, or nil when absent.
func (c *Context) Param(name string) any {
	return c.params[name]
}

// ParamString returns the bound value for name as a string, or "" when
// absent or not a string.
func (c *Context) ParamString(name string) string {
	s, _ := c.params[name].(string)
	return s
}

// ParamInt returns the bound value for name as an int, or 0 when absent
// or not an int.
func (c *Context) ParamInt(name string) int {
	n, _ := c.params[name].(int)
	return n
}

// Params returns the full binding map.
func (c *Context) Params() Params {
	return c.params
}

// Scope returns the worker's execution-context scope.
func (c *Context) Scope() *appctx.Scope {
	return c.scope
}

// Request returns the current request, or appctx.ErrRequestUnbound.
func (c *Context) Request() (*request.Request, error) {
	return c.scope.Request()
}

// App returns the current application instance, or appctx.ErrAppUnbound.
func (c *Context) App() (any, error) {
	return c.scope.App()
}

// G returns the current application context's value namespace, or
// appctx.ErrAppUnbound.
func (c *Context) G() (*appctx.Globals, error) {
	return c.scope.G()
}

// Session returns the current request's session mapping, or
// appctx.ErrRequestUnbound.
func (c *Context) Session() (map[string]any, error) {
	return c.scope.Session()
}
