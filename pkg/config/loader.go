package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// store caches one parsed value per config struct type.
type store struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cache = &store{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load populates v from environment variables according to its `env` and
// `envDefault` field tags. A .env file in the working directory is read once
// per process; variables already set in the environment take precedence.
//
// Each struct type is parsed once. Later calls for the same type copy the
// cached value into v, so flags applied on top of the result never leak
// back into the cache.
//
//	type Settings struct {
//		Target string `env:"LOCGEN_TARGET" envDefault:"cpp"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, typ)
	}

	defaultEnvLoaded.Do(func() {
		// A missing .env is not an error.
		_ = godotenv.Load()
	})

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[typ] = parsed
	*v = parsed
	return nil
}

// LoadEnv reads the given .env files into the process environment. Unlike the
// implicit ./.env read by Load, the files must exist. Variables that are
// already set are not overwritten, and earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached config so the next Load parses the
// environment again.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
