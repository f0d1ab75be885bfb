// Package miroslava is a minimal Flask-style web framework: a raw-TCP
// HTTP server, an ordered URL rule table with typed dynamic segments, a
// scoped execution-context stack, and a response normalization step that
// accepts plain bodies, JSON-serializable values, and body/status/header
// tuples from view functions.
//
//	app := miroslava.New("hello")
//
//	app.Get("/", func(ctx *handler.Context) any {
//		return "<h1>Hello!</h1>"
//	})
//
//	app.Get("/item/<int:id>", func(ctx *handler.Context) any {
//		return response.Tuple{map[string]any{"id": ctx.ParamInt("id")}, 200}
//	})
//
//	app.Run(ctx, "")
//
// The building blocks live under core/ and can be used on their own; this
// package wires them together behind a small application facade.
package miroslava
