package webserver

import (
	"bytes"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/miroslava-go/miroslava/core/appctx"
	"github.com/miroslava-go/miroslava/core/logger"
	"github.com/miroslava-go/miroslava/core/request"
	"github.com/miroslava-go/miroslava/core/response"
	"github.com/miroslava-go/miroslava/core/router"
)

// headerEnd terminates the request-line-and-headers block.
var headerEnd = []byte("\r\n\r\n")

const readChunkSize = 1024

// handleConn runs the whole pipeline for one connection: read, parse,
// push contexts, dispatch, write, close. A connection that never
// completes its header block is dropped without a response.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	headerBlock, leftover, ok := readHeaderBlock(conn)
	if !ok {
		return
	}

	env := makeEnviron(headerBlock)
	s.fillConnEnv(env, conn)
	body := readBody(conn, leftover, env.Get(request.EnvContentLength))
	req := request.New(env, body)

	scope := appctx.NewScope()
	reqCtx := appctx.NewRequestContext(req, nil)
	reqCtx.ID = uuid.NewString()
	scope.PushApp(appctx.NewAppContext(s.app))
	scope.PushRequest(reqCtx)
	defer func() {
		_, _ = scope.PopRequest()
		_, _ = scope.PopApp()
	}()

	start := time.Now()
	resp, err := s.dispatch(scope, req)
	if err != nil {
		s.logFault(req, reqCtx.ID, err)
		resp = internalServerError()
	}

	if err := writeResponse(conn, resp); err != nil {
		s.logger.Debug("response write failed",
			logger.Error(err),
			logger.RequestID(reqCtx.ID),
		)
		return
	}

	s.logger.Info("request",
		logger.Method(req.Method),
		logger.Path(req.Path),
		logger.StatusCode(resp.StatusCode),
		logger.ClientIP(req.RemoteAddr),
		logger.RequestID(reqCtx.ID),
		logger.Elapsed(start),
	)
}

// readHeaderBlock buffers socket reads until the blank line ending the
// header block is seen. It reports false when the client closes the
// connection first, in which case no response is attempted.
func readHeaderBlock(conn net.Conn) (headerBlock, leftover []byte, ok bool) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)
	for !bytes.Contains(buf.Bytes(), headerEnd) {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err != nil {
			break
		}
	}
	raw := buf.Bytes()
	i := bytes.Index(raw, headerEnd)
	if i < 0 {
		return nil, nil, false
	}
	return raw[:i], raw[i+len(headerEnd):], true
}

// readBody keeps reading until the declared Content-Length is buffered.
// An early close leaves the short body as-is; absent or malformed length
// declarations keep only the bytes that arrived with the header block.
func readBody(conn net.Conn, leftover []byte, contentLength string) []byte {
	body := leftover
	length, err := strconv.Atoi(contentLength)
	if err != nil || length <= 0 {
		return body
	}
	chunk := make([]byte, readChunkSize)
	for len(body) < length {
		n, err := conn.Read(chunk)
		if n > 0 {
			body = append(body, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return body
}

// fillConnEnv adds the connection-derived environment keys. The server
// address comes from the bound listener, so a configured port of 0
// reports the real ephemeral port.
func (s *Server) fillConnEnv(env request.Environ, conn net.Conn) {
	if host, port, err := net.SplitHostPort(s.BoundAddr()); err == nil {
		env[request.EnvServerName] = host
		env[request.EnvServerPort] = port
	}
	if remote := conn.RemoteAddr(); remote != nil {
		if host, _, err := net.SplitHostPort(remote.String()); err == nil {
			env[request.EnvRemoteAddr] = host
		} else {
			env[request.EnvRemoteAddr] = remote.String()
		}
	}
}

// logFault reports an unexpected dispatch fault. The detail stays in the
// logs; the wire only ever sees a generic 500.
func (s *Server) logFault(req *request.Request, requestID string, err error) {
	attrs := []any{
		logger.Error(err),
		logger.Method(req.Method),
		logger.Path(req.Path),
		logger.RequestID(requestID),
	}
	var panicErr *router.PanicError
	if s.debug && errors.As(err, &panicErr) {
		attrs = append(attrs, "stack", string(panicErr.Stack()))
	}
	s.logger.Error("internal server error", attrs...)
}

func internalServerError() *response.Response {
	return response.New("Internal Server Error",
		response.WithStatus(500),
		response.WithContentType("text/plain; charset=utf-8"),
	)
}
