package webserver

import "net"

// Config holds server configuration with environment variable support.
type Config struct {
	// Host to bind to.
	Host string `env:"HOST" envDefault:"127.0.0.1"`

	// Port for the webserver.
	Port string `env:"PORT" envDefault:"9001"`

	// Debug surfaces unexpected-fault detail (stack traces) in the logs.
	// It has no protocol effect.
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// DefaultConfig returns a Config with the development defaults.
func DefaultConfig() Config {
	return Config{Host: "127.0.0.1", Port: "9001"}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
