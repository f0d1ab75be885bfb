package webserver

import "log/slog"

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets the logger for server lifecycle and access logs.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.logger = log }
}

// WithDebug toggles stack traces for unexpected handler faults in the
// logs.
func WithDebug(debug bool) Option {
	return func(s *Server) { s.debug = debug }
}
