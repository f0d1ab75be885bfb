// Package webserver implements the TCP acceptor and the per-connection
// pipeline: read raw bytes, parse them into a request environment, push
// the execution contexts, dispatch, serialize the response, close.
//
// The concurrency model is one goroutine per accepted connection,
// unbounded, with no pool or admission control. Workers share
// nothing mutable (the route table is read-only after startup and every
// worker owns its own context scope), so no locking is involved in the
// request path. Workers are not tracked: cancelling the accept loop stops
// new connections and releases the listener, while in-flight workers
// finish on their own and cannot block shutdown.
//
// Each exchange is strictly ordered within its connection: parse, then
// dispatch, then one blocking write, then close. There is no keep-alive,
// no chunked transfer encoding, and no read timeout: a client that never
// completes its header block holds its worker until it disconnects.
package webserver
