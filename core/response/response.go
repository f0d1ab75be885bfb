package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/miroslava-go/miroslava/core/header"
)

const (
	// DefaultStatus is the status applied when none is given.
	DefaultStatus = http.StatusOK

	// DefaultContentType is the content type applied to textual bodies
	// that do not declare one.
	DefaultContentType = "text/html; charset=utf-8"

	// JSONContentType is the fixed content type for JSON responses.
	JSONContentType = "application/json; charset=utf-8"
)

// Response is a mutable outgoing HTTP message. It is built by a handler's
// return value (or a short-circuit abort) and consumed exactly once by the
// wire serializer.
type Response struct {
	StatusCode int
	Reason     string
	Header     header.Header
	chunks     [][]byte
}

// Option mutates a Response during construction.
type Option func(*Response)

// WithStatus sets the status code, keeping the reason phrase in sync.
func WithStatus(code int) Option {
	return func(r *Response) { r.SetStatus(code) }
}

// WithContentType sets the Content-Type header.
func WithContentType(ct string) Option {
	return func(r *Response) { r.Header.Set("Content-Type", ct) }
}

// WithHeader sets a single header field.
func WithHeader(name, value string) Option {
	return func(r *Response) { r.Header.Set(name, value) }
}

// New creates a Response from a textual body with 200 OK status and the
// default text/html content type, then applies the given options.
func New(body string, opts ...Option) *Response {
	return NewBytes([]byte(body), opts...)
}

// NewBytes creates a Response from raw body bytes with 200 OK status and
// the default text/html content type, then applies the given options.
func NewBytes(body []byte, opts ...Option) *Response {
	r := &Response{
		Header: header.New(),
	}
	r.SetStatus(DefaultStatus)
	r.Header.Set("Content-Type", DefaultContentType)
	if len(body) > 0 {
		r.chunks = [][]byte{body}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetStatus sets the status code and updates the reason phrase to match.
// Unknown codes keep an empty phrase.
func (r *Response) SetStatus(code int) {
	r.StatusCode = code
	r.Reason = http.StatusText(code)
}

// Status returns the combined "code phrase" status line fragment.
func (r *Response) Status() string {
	if r.Reason == "" {
		return fmt.Sprintf("%d", r.StatusCode)
	}
	return fmt.Sprintf("%d %s", r.StatusCode, r.Reason)
}

// SetBody replaces the body with a single chunk.
func (r *Response) SetBody(body []byte) {
	r.chunks = [][]byte{body}
}

// Append adds a chunk to the body sequence.
func (r *Response) Append(chunk []byte) {
	r.chunks = append(r.chunks, chunk)
}

// Body flattens the chunk sequence into one byte slice.
func (r *Response) Body() []byte {
	switch len(r.chunks) {
	case 0:
		return nil
	case 1:
		return r.chunks[0]
	}
	n := 0
	for _, c := range r.chunks {
		n += len(c)
	}
	out := make([]byte, 0, n)
	for _, c := range r.chunks {
		out = append(out, c...)
	}
	return out
}

// ContentLength returns the total body size in bytes.
func (r *Response) ContentLength() int {
	n := 0
	for _, c := range r.chunks {
		n += len(c)
	}
	return n
}

// Text returns the flattened body decoded as a string.
func (r *Response) Text() string {
	return string(r.Body())
}

func (r *Response) String() string {
	return fmt.Sprintf("<Response %d bytes [%s]>", r.ContentLength(), r.Status())
}

// SanitizeHeaderValue strips CR, LF, and other control bytes (except
// horizontal tab) so a header value cannot break the wire framing.
func SanitizeHeaderValue(v string) string {
	if !strings.ContainsFunc(v, func(c rune) bool {
		return c == '\r' || c == '\n' || c == 0x7f || (c < 0x20 && c != '\t')
	}) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
