package response

import (
	"encoding/json"
	"fmt"
)

// JSON serializes v and wraps it in a Response with the fixed
// application/json content type and 200 OK status.
func JSON(v any, opts ...Option) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONEncode, err)
	}
	opts = append([]Option{WithContentType(JSONContentType)}, opts...)
	return NewBytes(data, opts...), nil
}

// MustJSON is like JSON but panics on encoding failure. Intended for
// static values known to be serializable.
func MustJSON(v any, opts ...Option) *Response {
	r, err := JSON(v, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
