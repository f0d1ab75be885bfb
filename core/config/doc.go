// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads .env files on first use and parses environment
// variables into struct fields via caarlos0/env struct tags:
//
//	type ServerConfig struct {
//		Host  string `env:"HOST" envDefault:"127.0.0.1"`
//		Port  int    `env:"PORT" envDefault:"9001"`
//		Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Different types are cached independently; loading the same type twice
// returns the first result.
package config
