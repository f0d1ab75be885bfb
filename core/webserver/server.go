package webserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"log/slog"

	"github.com/miroslava-go/miroslava/core/appctx"
	"github.com/miroslava-go/miroslava/core/logger"
	"github.com/miroslava-go/miroslava/core/request"
	"github.com/miroslava-go/miroslava/core/response"
)

// DispatchFunc resolves one parsed request to a response. An error return
// means an unexpected fault; the connection handler converts it into a
// 500 and never leaks the detail onto the wire.
type DispatchFunc func(scope *appctx.Scope, req *request.Request) (*response.Response, error)

// Server owns the listening socket and the per-connection workers.
type Server struct {
	mu       sync.Mutex
	addr     string
	app      any
	dispatch DispatchFunc
	logger   *slog.Logger
	debug    bool
	ln       net.Listener
	running  bool
}

// New creates a Server bound to addr that hands every parsed request to
// dispatch. The app reference is pushed as the application context for
// each connection.
func New(addr string, app any, dispatch DispatchFunc, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		app:      app,
		dispatch: dispatch,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Server from configuration.
func NewFromConfig(cfg Config, app any, dispatch DispatchFunc, opts ...Option) *Server {
	opts = append([]Option{WithDebug(cfg.Debug)}, opts...)
	return New(cfg.Addr(), app, dispatch, opts...)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// BoundAddr returns the actual bound address once the server started,
// useful when the configured port is 0.
func (s *Server) BoundAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Start binds the listener and accepts connections until the context is
// canceled or the listener fails. Every accepted connection gets its own
// worker goroutine; workers are not waited for.
func (s *Server) Start(ctx context.Context) error {
	if s.dispatch == nil {
		return ErrNilDispatch
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s: %v", ErrBindFailed, s.addr, err)
	}
	s.ln = ln
	s.running = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "server started", logger.Addr(ln.Addr().String()))

	// Closing the listener is what breaks the Accept loop below.
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			s.running = false
			s.ln = nil
			s.mu.Unlock()

			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.logger.Info("server stopped accepting connections")
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}
		go s.handleConn(conn)
	}
}

// Stop releases the listening socket, which unblocks Start. In-flight
// workers are not cancelled.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// Run provides errgroup compatibility: it returns a function that starts
// the server and treats context cancellation as a clean exit.
func (s *Server) Run(ctx context.Context) func() error {
	return func() error {
		err := s.Start(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
}
