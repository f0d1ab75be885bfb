package webserver

import (
	"net/url"
	"strings"

	"github.com/miroslava-go/miroslava/core/request"
)

// makeEnviron converts the raw header block (request line plus header
// lines, without the terminating blank line) into the flat request
// environment. A malformed or empty request line falls back to "GET /".
// Header lines must look like "Name: value"; repeated names overwrite.
func makeEnviron(headerBlock []byte) request.Environ {
	env := request.Environ{
		request.EnvRequestMethod: "GET",
		request.EnvPathInfo:      "/",
		request.EnvQueryString:   "",
		request.EnvURLScheme:     "http",
	}

	lines := strings.Split(string(headerBlock), "\r\n")

	fields := strings.Fields(lines[0])
	if len(fields) >= 2 {
		env[request.EnvRequestMethod] = fields[0]
		path, query, _ := strings.Cut(fields[1], "?")
		env[request.EnvPathInfo] = unescapePath(path)
		env[request.EnvQueryString] = query
		if len(fields) >= 3 {
			env[request.EnvServerProtocol] = fields[2]
		}
	}

	for _, line := range lines[1:] {
		name, value, found := strings.Cut(line, ": ")
		if !found || name == "" {
			continue
		}
		env.SetHeader(name, value)
	}

	return env
}

// unescapePath decodes percent-escapes, keeping the raw path when the
// escape sequence is malformed.
func unescapePath(path string) string {
	if decoded, err := url.PathUnescape(path); err == nil {
		return decoded
	}
	return path
}
