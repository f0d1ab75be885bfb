package response

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/miroslava-go/miroslava/core/header"
)

// Tuple is an ordered handler return value pairing a body with a status
// and/or headers:
//
//	Tuple{body, status}
//	Tuple{body, headers}
//	Tuple{body, status, headers}
//
// The status element may be an int or a numeric string; the headers
// element may be a header.Header, map[string]string, map[string][]string,
// or a [][2]string sequence of pairs.
type Tuple []any

// Pair is one ordered header entry for use in Tuple headers.
type Pair = [2]string

// Make normalizes a handler return value into a Response, evaluated once:
//
//   - *Response passes through; a tuple-supplied status or headers still
//     apply to it.
//   - string and []byte bodies pass through with the text/html default.
//   - maps, slices, arrays, and structs are JSON-serialized with the
//     application/json content type.
//   - anything else is stringified.
//
// Make reports an error only for malformed shapes (wrong tuple length,
// uninterpretable status, unsupported headers value) and JSON encoding
// failures; routing-level outcomes never reach it.
func Make(rv any) (*Response, error) {
	var (
		body      any = rv
		status    any
		headerVal any
	)

	if tuple, ok := rv.(Tuple); ok {
		switch len(tuple) {
		case 3:
			body, status, headerVal = tuple[0], tuple[1], tuple[2]
		case 2:
			body = tuple[0]
			if isStatusValue(tuple[1]) {
				status = tuple[1]
			} else {
				headerVal = tuple[1]
			}
		default:
			return nil, fmt.Errorf("%w: got %d elements", ErrBadTupleLength, len(tuple))
		}
	}

	resp, err := makeBody(body)
	if err != nil {
		return nil, err
	}

	if status != nil {
		code, err := statusCode(status)
		if err != nil {
			return nil, err
		}
		resp.SetStatus(code)
	}

	if headerVal != nil {
		if err := mergeHeaders(resp.Header, headerVal); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// makeBody resolves the body element alone, without status or headers.
func makeBody(body any) (*Response, error) {
	switch v := body.(type) {
	case *Response:
		return v, nil
	case nil:
		return New(""), nil
	case string:
		return New(v), nil
	case []byte:
		return NewBytes(v), nil
	case error:
		return New(v.Error()), nil
	case fmt.Stringer:
		return New(v.String()), nil
	}

	switch reflect.ValueOf(body).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return JSON(body)
	}

	return New(fmt.Sprint(body)), nil
}

// isStatusValue reports whether v is usable as the status element of a
// 2-tuple, which decides whether the second element is a status or a
// headers collection.
func isStatusValue(v any) bool {
	switch s := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return false
		}
		_, err := strconv.Atoi(fields[0])
		return err == nil
	}
	return false
}

// statusCode coerces a status element into an integer code. A string may
// carry a trailing reason phrase ("404 Not Found"), which is dropped in
// favor of the canonical phrase for the code.
func statusCode(v any) (int, error) {
	switch s := v.(type) {
	case int:
		return s, nil
	case int8:
		return int(s), nil
	case int16:
		return int(s), nil
	case int32:
		return int(s), nil
	case int64:
		return int(s), nil
	case uint:
		return int(s), nil
	case uint8:
		return int(s), nil
	case uint16:
		return int(s), nil
	case uint32:
		return int(s), nil
	case uint64:
		return int(s), nil
	case string:
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return 0, fmt.Errorf("%w: empty string", ErrBadStatusValue)
		}
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadStatusValue, s)
		}
		return code, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrBadStatusValue, v)
}

// mergeHeaders merges a tuple headers element onto the response's header
// collection. Multi-valued entries are joined with ", ".
func mergeHeaders(h header.Header, v any) error {
	switch hv := v.(type) {
	case header.Header:
		for name, values := range hv {
			h.SetJoined(name, values...)
		}
	case map[string]string:
		for name, value := range hv {
			h.Set(name, value)
		}
	case map[string][]string:
		for name, values := range hv {
			h.SetJoined(name, values...)
		}
	case map[string]any:
		for name, value := range hv {
			switch vv := value.(type) {
			case string:
				h.Set(name, vv)
			case []string:
				h.SetJoined(name, vv...)
			default:
				h.Set(name, fmt.Sprint(vv))
			}
		}
	case []Pair:
		for _, p := range hv {
			h.Set(p[0], p[1])
		}
	default:
		return fmt.Errorf("%w: %T", ErrBadHeadersValue, v)
	}
	return nil
}
