package handler

// ViewFunc is the callable bound to an endpoint. Its return value is
// normalized by the response package: a *response.Response, a textual or
// JSON-serializable body, or a response.Tuple.
type ViewFunc func(ctx *Context) any
