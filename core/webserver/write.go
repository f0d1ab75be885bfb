package webserver

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/miroslava-go/miroslava/core/response"
)

// writeResponse serializes the response and pushes it onto the wire as a
// single blocking write: status line, headers, a computed Content-Length,
// a blank line, and the raw body. The caller closes the connection
// afterwards; there is no keep-alive.
func writeResponse(w io.Writer, resp *response.Response) error {
	body := resp.Body()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %s\r\n", resp.Status())

	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		// The length of the body on the wire is authoritative.
		if strings.EqualFold(name, "Content-Length") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range resp.Header[name] {
			fmt.Fprintf(&buf, "%s: %s\r\n", name, response.SanitizeHeaderValue(value))
		}
	}
	fmt.Fprintf(&buf, "Content-Length: %d\r\n\r\n", len(body))
	buf.Write(body)

	_, err := w.Write(buf.Bytes())
	return err
}
