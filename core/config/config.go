package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (pointer to loaded struct)
)

// Load populates cfg from the environment, loading .env files once per
// process first. cfg must be a non-nil pointer to a struct. Each struct
// type is parsed once; later calls receive the cached result.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: Load expects a non-nil struct pointer, got %T", cfg)
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; real values come from the process
		// environment then.
		_ = godotenv.Load()
	})

	t := v.Elem().Type()
	if cached, ok := cache.Load(t); ok {
		v.Elem().Set(reflect.ValueOf(cached).Elem())
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	stored := reflect.New(t)
	stored.Elem().Set(v.Elem())
	if prev, loaded := cache.LoadOrStore(t, stored.Interface()); loaded {
		v.Elem().Set(reflect.ValueOf(prev).Elem())
	}
	return nil
}

// MustLoad is like Load but panics on failure. Useful at startup where a
// missing required variable should stop the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
