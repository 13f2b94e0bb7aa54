package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Env reads typed settings from environment variables. An unset or empty
// variable yields the default; a malformed one yields the default and is
// remembered so Err can report it.
type Env struct {
	lookup func(key string) (string, bool)
	errs   []error
}

// NewEnv returns an Env over the process environment.
func NewEnv() *Env {
	return NewEnvFrom(os.LookupEnv)
}

// NewEnvFrom returns an Env over an arbitrary lookup function.
func NewEnvFrom(lookup func(key string) (string, bool)) *Env {
	return &Env{lookup: lookup}
}

// MapLookup adapts a map to the lookup signature NewEnvFrom expects.
func MapLookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func (e *Env) raw(key string) (string, bool) {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (e *Env) malformed(key, value string, err error) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", key, value, err))
}

// String returns the value of key or def.
func (e *Env) String(key, def string) string {
	if value, ok := e.raw(key); ok {
		return value
	}
	return def
}

// Int returns key parsed as a decimal integer or def.
func (e *Env) Int(key string, def int) int {
	value, ok := e.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		e.malformed(key, value, err)
		return def
	}
	return n
}

// Float returns key parsed as a float or def.
func (e *Env) Float(key string, def float64) float64 {
	value, ok := e.raw(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		e.malformed(key, value, err)
		return def
	}
	return f
}

// Duration returns key parsed by time.ParseDuration or def.
func (e *Env) Duration(key string, def time.Duration) time.Duration {
	value, ok := e.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		e.malformed(key, value, err)
		return def
	}
	return d
}

// Bool returns key parsed by strconv.ParseBool or def.
func (e *Env) Bool(key string, def bool) bool {
	value, ok := e.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		e.malformed(key, value, err)
		return def
	}
	return b
}

// Err reports every malformed variable read so far.
func (e *Env) Err() error {
	return errors.Join(e.errs...)
}
