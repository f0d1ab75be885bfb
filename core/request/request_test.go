package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroslava-go/miroslava/core/request"
)

func TestEnvironSetHeader(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Host", "example.com")
	env.SetHeader("User-Agent", "curl/8.0")
	env.SetHeader("Content-Length", " 42 ")
	env.SetHeader("content-type", "text/plain")

	assert.Equal(t, "example.com", env["HTTP_HOST"])
	assert.Equal(t, "curl/8.0", env["HTTP_USER_AGENT"])
	assert.Equal(t, "42", env[request.EnvContentLength])
	assert.Equal(t, "text/plain", env[request.EnvContentType])
}

func TestEnvironSetHeaderOverwrites(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("X-Token", "first")
	env.SetHeader("x-token", "second")

	assert.Equal(t, "second", env["HTTP_X_TOKEN"])
}

func TestNewPopulatesFieldsFromEnviron(t *testing.T) {
	t.Parallel()

	env := request.Environ{
		request.EnvRequestMethod: "post",
		request.EnvPathInfo:      "/items",
		request.EnvQueryString:   "page=2",
		request.EnvServerName:    "localhost",
		request.EnvServerPort:    "9001",
		request.EnvRemoteAddr:    "10.0.0.5",
		request.EnvURLScheme:     "http",
	}
	env.SetHeader("Accept", "application/json")

	req := request.New(env, []byte("payload"))

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/items", req.Path)
	assert.Equal(t, "page=2", req.QueryString)
	assert.Equal(t, "localhost", req.Host)
	assert.Equal(t, 9001, req.Port)
	assert.Equal(t, "10.0.0.5", req.RemoteAddr)
	assert.Equal(t, []byte("payload"), req.Body)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	req := request.New(nil, nil)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/", req.Path)
	assert.Equal(t, "http", req.Scheme)
	assert.False(t, req.IsSecure())
}

func TestHeaderReconstructionFromEnviron(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Content-Type", "application/json")
	env.SetHeader("Content-Length", "2")
	env.SetHeader("X-Request-Id", "abc")

	req := request.New(env, []byte("{}"))

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "2", req.Header.Get("Content-Length"))
	assert.Equal(t, "abc", req.Header.Get("X-Request-Id"))
}

func TestArgs(t *testing.T) {
	t.Parallel()

	env := request.Environ{request.EnvQueryString: "a=1&a=2&b=&c=hello%20world&bad=%zz"}
	req := request.New(env, nil)

	args := req.Args()
	assert.Equal(t, []string{"1", "2"}, args["a"])
	assert.Equal(t, []string{""}, args["b"])
	assert.Equal(t, "hello world", args.Get("c"))
	// Malformed escapes skip the pair instead of failing the set.
	assert.NotContains(t, args, "bad")
}

func TestForm(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Content-Type", "application/x-www-form-urlencoded")
	req := request.New(env, []byte("name=miro&tags=a&tags=b"))

	form := req.Form()
	assert.Equal(t, "miro", form.Get("name"))
	assert.Equal(t, []string{"a", "b"}, form["tags"])
}

func TestFormIgnoresOtherContentTypes(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Content-Type", "application/json")
	req := request.New(env, []byte(`{"name":"miro"}`))

	assert.Empty(t, req.Form())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Content-Type", "application/json")
	req := request.New(env, []byte(`{"id": 7, "ok": true}`))

	v := req.JSON()
	require.NotNil(t, v)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), m["id"])
	assert.Equal(t, true, m["ok"])
}

func TestJSONSilentOnFailure(t *testing.T) {
	t.Parallel()

	env := request.Environ{}
	env.SetHeader("Content-Type", "application/json")
	assert.Nil(t, request.New(env, []byte("{not json")).JSON())

	env2 := request.Environ{}
	env2.SetHeader("Content-Type", "text/plain")
	assert.Nil(t, request.New(env2, []byte(`{"valid": true}`)).JSON())
}

func TestURL(t *testing.T) {
	t.Parallel()

	env := request.Environ{
		request.EnvURLScheme:   "https",
		request.EnvServerName:  "example.com",
		request.EnvServerPort:  "8443",
		request.EnvPathInfo:    "/a/b",
		request.EnvQueryString: "x=1",
	}
	req := request.New(env, nil)

	assert.Equal(t, "https://example.com:8443/a/b?x=1", req.URL())
	assert.Equal(t, "/a/b?x=1", req.FullPath())
	assert.True(t, req.IsSecure())
}
