package request

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/miroslava-go/miroslava/core/header"
)

// Request is an immutable snapshot of one inbound HTTP message.
type Request struct {
	Environ     Environ
	Method      string
	Scheme      string
	Host        string
	Port        int
	RootPath    string
	Path        string
	QueryString string
	Header      header.Header
	RemoteAddr  string
	Body        []byte

	argsOnce sync.Once
	args     url.Values
	formOnce sync.Once
	form     url.Values
	jsonOnce sync.Once
	jsonVal  any
}

// New builds a Request from the parser's Environ and the raw body bytes.
func New(env Environ, body []byte) *Request {
	if env == nil {
		env = make(Environ)
	}
	port, _ := strconv.Atoi(env.GetOr(EnvServerPort, "0"))
	r := &Request{
		Environ:     env,
		Method:      strings.ToUpper(env.GetOr(EnvRequestMethod, "GET")),
		Scheme:      env.GetOr(EnvURLScheme, "http"),
		Host:        env.Get(EnvServerName),
		Port:        port,
		RootPath:    env.Get(EnvScriptName),
		Path:        env.GetOr(EnvPathInfo, "/"),
		QueryString: env.Get(EnvQueryString),
		Header:      header.New(),
		RemoteAddr:  env.Get(EnvRemoteAddr),
		Body:        body,
	}
	for key, value := range env {
		if name, ok := headerName(key); ok {
			r.Header.Add(name, value)
		}
	}
	return r
}

// Args returns the parsed query arguments. Repeated keys keep all their
// values; blank values are preserved. Parsed once and cached.
func (r *Request) Args() url.Values {
	r.argsOnce.Do(func() {
		r.args = parseQuery(r.QueryString)
	})
	return r.args
}

// Form returns the parsed form body for urlencoded submissions. For any
// other content type, or when parsing fails, it returns an empty set.
func (r *Request) Form() url.Values {
	r.formOnce.Do(func() {
		if strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			r.form = parseQuery(string(r.Body))
		} else {
			r.form = url.Values{}
		}
	})
	return r.form
}

// JSON returns the decoded JSON body, or nil when the content type is not
// JSON or decoding fails. Decoded once and cached.
func (r *Request) JSON() any {
	r.jsonOnce.Do(func() {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			return
		}
		var v any
		if err := json.Unmarshal(r.Body, &v); err == nil {
			r.jsonVal = v
		}
	})
	return r.jsonVal
}

// FullPath returns the path with its query string appended.
func (r *Request) FullPath() string {
	return r.Path + "?" + r.QueryString
}

// IsSecure reports whether the request arrived over HTTPS.
func (r *Request) IsSecure() bool {
	return r.Scheme == "https"
}

// URL reconstructs the full request URL from scheme, host, root path,
// path, and query string.
func (r *Request) URL() string {
	var b strings.Builder
	b.WriteString(r.Scheme)
	b.WriteString("://")
	b.WriteString(r.Host)
	if r.Port > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(r.Port))
	}
	b.WriteString(strings.TrimSuffix(r.RootPath, "/"))
	if !strings.HasPrefix(r.Path, "/") {
		b.WriteString("/")
	}
	b.WriteString(r.Path)
	if r.QueryString != "" {
		b.WriteString("?")
		b.WriteString(r.QueryString)
	}
	return b.String()
}

// parseQuery is a tolerant urlencoded parser: malformed pairs are skipped
// instead of failing the whole set, and blank values are kept.
func parseQuery(raw string) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		values.Add(k, v)
	}
	return values
}
