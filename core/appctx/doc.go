// Package appctx implements the scoped execution-context stacks that expose
// "current application" and "current request" state to handler code.
//
// A Scope belongs to exactly one worker (one connection being processed) and
// holds two independent LIFO stacks: one of application contexts and one of
// request contexts. The connection handler pushes a context of each kind
// before dispatching and pops them when processing ends, even on error.
//
// Accessors on a Scope fail with a distinguishable sentinel error
// (ErrAppUnbound, ErrRequestUnbound) when the relevant stack is empty. They
// never fall back to stale data: because every worker owns its own Scope,
// two connections processed concurrently cannot observe each other's
// contexts, and no locking is needed.
//
// Usage:
//
//	scope := appctx.NewScope()
//	scope.PushApp(appctx.NewAppContext(app))
//	scope.PushRequest(appctx.NewRequestContext(req, nil))
//	defer func() {
//		scope.PopRequest()
//		scope.PopApp()
//	}()
//
//	req, err := scope.Request() // fails with ErrRequestUnbound if not pushed
package appctx
