// Package header provides a case-insensitive, multi-valued HTTP header
// collection shared by the request and response types.
//
// Keys are canonicalized to MIME style (e.g. "content-type" becomes
// "Content-Type"), so lookups work regardless of the casing used on the
// wire. Each key may hold several values; Get returns the first one and
// Values returns all of them.
package header
