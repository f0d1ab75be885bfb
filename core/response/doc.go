// Package response provides the outgoing HTTP message under construction
// and the normalization step that turns handler return values into one.
//
// A Response keeps its status code and reason phrase consistent as a pair,
// carries a case-insensitive header collection, and stores its body as a
// sequence of byte chunks that the wire serializer flattens once.
//
// Handlers may return a ready-made *Response, a plain body (string, bytes,
// or any JSON-serializable value), or a Tuple pairing a body with a status
// and/or headers; Make resolves all of these shapes. Abort short-circuits
// handler execution with a fully-built Response that bypasses
// normalization entirely.
package response
