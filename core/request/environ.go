package request

import "strings"

// Environ keys set by the wire parser. The layout mirrors the CGI
// conventions: Content-Length and Content-Type are stored unprefixed,
// every other header is upper-cased with hyphens replaced by underscores
// and prefixed with "HTTP_".
const (
	EnvRequestMethod  = "REQUEST_METHOD"
	EnvPathInfo       = "PATH_INFO"
	EnvQueryString    = "QUERY_STRING"
	EnvScriptName     = "SCRIPT_NAME"
	EnvServerName     = "SERVER_NAME"
	EnvServerPort     = "SERVER_PORT"
	EnvServerProtocol = "SERVER_PROTOCOL"
	EnvRemoteAddr     = "REMOTE_ADDR"
	EnvURLScheme      = "URL_SCHEME"
	EnvContentLength  = "CONTENT_LENGTH"
	EnvContentType    = "CONTENT_TYPE"

	headerPrefix = "HTTP_"
)

// Environ is a flat, single-valued transport-layer view of one request.
// Duplicate header lines overwrite earlier ones here; multi-valued access
// is the job of the Request's header collection.
type Environ map[string]string

// Get returns the value stored under key, or "" when absent.
func (e Environ) Get(key string) string {
	return e[key]
}

// GetOr returns the value stored under key, or def when absent.
func (e Environ) GetOr(key, def string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return def
}

// SetHeader stores one parsed header line. Content-Length and
// Content-Type keep their bare keys; everything else gets the HTTP_
// prefix. Repeated names overwrite.
func (e Environ) SetHeader(name, value string) {
	key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	switch key {
	case EnvContentLength, EnvContentType:
		e[key] = strings.TrimSpace(value)
	default:
		e[headerPrefix+key] = strings.TrimSpace(value)
	}
}

// headerName converts an Environ key back to its MIME-style header name,
// reporting false for keys that do not describe a header.
func headerName(key string) (string, bool) {
	switch key {
	case EnvContentLength, EnvContentType:
		return strings.ReplaceAll(key, "_", "-"), true
	}
	if name, ok := strings.CutPrefix(key, headerPrefix); ok {
		return strings.ReplaceAll(name, "_", "-"), true
	}
	return "", false
}
