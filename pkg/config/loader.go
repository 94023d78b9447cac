package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache maps a config type name to the value parsed for it. Every type
	// is parsed at most once per process; later Load calls for the same
	// type return the cached copy.
	cache sync.Map

	dotenvOnce sync.Once
)

// Load fills the provided configuration struct from environment variables.
//
// On first use it loads the default .env file if one exists, then parses
// environment variables into the struct based on `env` field tags. A
// successfully parsed type is cached for the lifetime of the process, so
// subsequent calls for the same type are cheap and return identical values.
//
// Example:
//
//	type TransportConfig struct {
//		Endpoint string        `env:"TRACK_ENDPOINT,required"`
//		Timeout  time.Duration `env:"TRACK_SEND_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg TransportConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine; real environments set variables directly.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// First stored value wins so concurrent loaders observe one consistent copy.
	actual, _ := cache.LoadOrStore(key, *v)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics when loading fails. Use it for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types carry no reflect type for their zero value.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
