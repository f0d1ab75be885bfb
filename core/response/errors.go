package response

import "errors"

var (
	// ErrBadTupleLength is returned by Make for a Tuple that is not 2 or
	// 3 elements long.
	ErrBadTupleLength = errors.New("a response tuple must be of length 2 or 3")

	// ErrBadHeadersValue is returned by Make when the headers element of
	// a tuple has a shape that cannot be merged.
	ErrBadHeadersValue = errors.New("unsupported headers value")

	// ErrBadStatusValue is returned by Make when a status element cannot
	// be interpreted as a status code.
	ErrBadStatusValue = errors.New("status must be an integer code")

	// ErrJSONEncode is returned when a mapping or sequence body cannot be
	// serialized as JSON.
	ErrJSONEncode = errors.New("failed to encode response body as JSON")
)
