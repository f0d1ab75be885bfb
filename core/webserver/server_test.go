package webserver_test

import (
	"context"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroslava-go/miroslava/core/appctx"
	"github.com/miroslava-go/miroslava/core/request"
	"github.com/miroslava-go/miroslava/core/response"
	"github.com/miroslava-go/miroslava/core/webserver"
)

// startServer runs srv until the test ends and returns its bound address.
func startServer(t *testing.T, srv *webserver.Server) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		addr := srv.BoundAddr()
		if !strings.HasSuffix(addr, ":0") {
			return addr
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("server never bound")
	return ""
}

// roundTrip sends raw bytes and reads the whole reply until the server
// closes the connection.
func roundTrip(t *testing.T, addr, raw string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	reply, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(reply)
}

func echoDispatch(scope *appctx.Scope, req *request.Request) (*response.Response, error) {
	if req.Path == "/hello" {
		return response.New("Hello!"), nil
	}
	if req.Path == "/echo" {
		return response.NewBytes(req.Body, response.WithContentType("text/plain")), nil
	}
	return response.New("Not Found", response.WithStatus(404)), nil
}

func TestServerRoundTrip(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil, echoDispatch)
	addr := startServer(t, srv)

	reply := roundTrip(t, addr, "GET /hello HTTP/1.1\r\nHost: test\r\n\r\n")
	assert.True(t, strings.HasPrefix(reply, "HTTP/1.1 200 OK\r\n"), "got %q", reply)
	assert.Contains(t, reply, "Content-Length: 6\r\n")
	assert.True(t, strings.HasSuffix(reply, "\r\n\r\nHello!"), "got %q", reply)
}

func TestServerReadsDeclaredBody(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil, echoDispatch)
	addr := startServer(t, srv)

	raw := "POST /echo HTTP/1.1\r\nHost: test\r\nContent-Length: 5\r\n\r\nhello"
	reply := roundTrip(t, addr, raw)
	assert.True(t, strings.HasSuffix(reply, "\r\n\r\nhello"), "got %q", reply)
}

func TestServerDropsMalformedRequest(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil, echoDispatch)
	addr := startServer(t, srv)

	raw, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	conn := raw.(*net.TCPConn)

	// No terminating blank line, then close: the server must hang up
	// without writing anything.
	_, err = conn.Write([]byte("GET /hello HTTP/1.1\r\nHost: test\r\n"))
	require.NoError(t, err)
	require.NoError(t, conn.CloseWrite())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	reply, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Empty(t, reply)
	conn.Close()
}

func TestServerConvertsDispatchFaultTo500(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil,
		func(scope *appctx.Scope, req *request.Request) (*response.Response, error) {
			return nil, assert.AnError
		})
	addr := startServer(t, srv)

	reply := roundTrip(t, addr, "GET / HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasPrefix(reply, "HTTP/1.1 500 Internal Server Error\r\n"), "got %q", reply)
	assert.NotContains(t, reply, assert.AnError.Error())
}

func TestServerBindsAppAndRequestContexts(t *testing.T) {
	t.Parallel()

	app := "the-app"
	srv := webserver.New("127.0.0.1:0", app,
		func(scope *appctx.Scope, req *request.Request) (*response.Response, error) {
			bound, err := scope.App()
			if err != nil {
				return nil, err
			}
			cur, err := scope.Request()
			if err != nil {
				return nil, err
			}
			if cur != req {
				return response.New("request mismatch", response.WithStatus(500)), nil
			}
			return response.New(bound.(string)), nil
		})
	addr := startServer(t, srv)

	reply := roundTrip(t, addr, "GET / HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasSuffix(reply, "\r\n\r\nthe-app"), "got %q", reply)
}

func TestServerReportsBoundAddress(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil,
		func(scope *appctx.Scope, req *request.Request) (*response.Response, error) {
			return response.New(net.JoinHostPort(req.Host, strconv.Itoa(req.Port))), nil
		})
	addr := startServer(t, srv)

	// The environment carries the listener's real ephemeral port, not
	// the configured ":0".
	reply := roundTrip(t, addr, "GET / HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasSuffix(reply, "\r\n\r\n"+addr), "got %q", reply)
}

func TestServerStartValidation(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil, nil)
	require.ErrorIs(t, srv.Start(context.Background()), webserver.ErrNilDispatch)
}

func TestServerRejectsDoubleStart(t *testing.T) {
	t.Parallel()

	srv := webserver.New("127.0.0.1:0", nil, echoDispatch)
	startServer(t, srv)

	err := srv.Start(context.Background())
	require.ErrorIs(t, err, webserver.ErrServerAlreadyRunning)
}

func TestServerBindFailure(t *testing.T) {
	t.Parallel()

	taken := webserver.New("127.0.0.1:0", nil, echoDispatch)
	addr := startServer(t, taken)

	srv := webserver.New(addr, nil, echoDispatch)
	err := srv.Start(context.Background())
	require.ErrorIs(t, err, webserver.ErrBindFailed)
}
