package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cached struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache      sync.Map // reflect.Type -> *cached
	dotenvOnce sync.Once
)

// LoadEnvFiles reads the given .env files into the process environment
// without overriding variables that are already set.
func LoadEnvFiles(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// Load parses the environment into v. The first successful or failed parse
// of a type is cached and replayed on later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	entry, _ := cache.LoadOrStore(reflect.TypeFor[T](), &cached{})
	c := entry.(*cached)
	c.once.Do(func() {
		var fresh T
		if err := Parse(&fresh, nil); err != nil {
			c.err = err
			return
		}
		c.value = fresh
	})
	if c.err != nil {
		return c.err
	}

	*v = c.value.(T)
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse fills v without caching. A nil vars map reads the process
// environment; otherwise only vars is consulted.
func Parse[T any](v *T, vars map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
