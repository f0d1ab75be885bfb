package webserver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroslava-go/miroslava/core/response"
)

func TestWriteResponse(t *testing.T) {
	t.Parallel()

	resp := response.New("<h1>hi</h1>")
	var buf bytes.Buffer
	require.NoError(t, writeResponse(&buf, resp))

	out := buf.String()
	head, body, found := strings.Cut(out, "\r\n\r\n")
	require.True(t, found)
	assert.Equal(t, "<h1>hi</h1>", body)

	lines := strings.Split(head, "\r\n")
	assert.Equal(t, "HTTP/1.1 200 OK", lines[0])
	assert.Contains(t, lines, "Content-Type: text/html; charset=utf-8")
	assert.Contains(t, lines, "Content-Length: 11")
}

func TestWriteResponseComputesContentLength(t *testing.T) {
	t.Parallel()

	// A stale declared length is replaced by the real body size.
	resp := response.New("four")
	resp.Header.Set("Content-Length", "999")

	var buf bytes.Buffer
	require.NoError(t, writeResponse(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "Content-Length: 4\r\n")
	assert.NotContains(t, out, "999")
}

func TestWriteResponseSanitizesHeaderValues(t *testing.T) {
	t.Parallel()

	resp := response.New("x")
	resp.Header.Set("X-Sneaky", "a\r\nInjected: yes")

	var buf bytes.Buffer
	require.NoError(t, writeResponse(&buf, resp))

	assert.Contains(t, buf.String(), "X-Sneaky: aInjected: yes\r\n")
	assert.NotContains(t, buf.String(), "\r\nInjected:")
}

func TestWriteResponseSingleWrite(t *testing.T) {
	t.Parallel()

	resp := response.New("payload")
	w := &countingWriter{}
	require.NoError(t, writeResponse(w, resp))
	assert.Equal(t, 1, w.calls)
}

type countingWriter struct {
	calls int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return len(p), nil
}
