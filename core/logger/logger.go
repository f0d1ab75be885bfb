package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures logger construction.
type Option func(*settings)

type settings struct {
	out     io.Writer
	level   slog.Level
	json    bool
	appName string
}

// WithDevelopment configures human-readable text output at debug level,
// tagged with the application name.
func WithDevelopment(appName string) Option {
	return func(s *settings) {
		s.json = false
		s.level = slog.LevelDebug
		s.appName = appName
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(appName string) Option {
	return func(s *settings) {
		s.json = true
		s.level = slog.LevelInfo
		s.appName = appName
	}
}

// WithLevel overrides the minimum level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.level = level }
}

// WithOutput overrides the destination writer.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// New builds a slog.Logger. Defaults to text output at info level on
// stderr.
func New(opts ...Option) *slog.Logger {
	s := settings{
		out:   os.Stderr,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&s)
	}

	var h slog.Handler
	if s.json {
		h = slog.NewJSONHandler(s.out, &slog.HandlerOptions{Level: s.level})
	} else {
		h = slog.NewTextHandler(s.out, &slog.HandlerOptions{Level: s.level})
	}

	log := slog.New(h)
	if s.appName != "" {
		log = log.With(slog.String("app", s.appName))
	}
	return log
}

// Discard returns a logger that drops everything. Useful as a default in
// components that accept an optional logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
