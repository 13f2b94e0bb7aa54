// Package retry runs operations again with exponential backoff until they
// succeed, fail permanently, or run out of attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config describes a backoff schedule and which failures are worth retrying.
type Config struct {
	// MaxAttempts counts the first call too.
	MaxAttempts  int
	InitialDelay time.Duration
	// MaxDelay caps a single wait. Zero means uncapped.
	MaxDelay   time.Duration
	Multiplier float64
	// Jitter spreads each wait by up to this fraction either way.
	Jitter float64
	// RetryableErrors lists substrings (matched case-insensitively) of
	// retryable error messages. Empty means every error is retryable.
	RetryableErrors []string
	// OnRetry is called before each wait with the attempt that just failed.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultConfig returns five attempts starting at one second and doubling.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
		Jitter:       0.1,
	}
}

// ConnectRetryableErrors returns error patterns worth retrying when opening a store:
// a postgres server that is still starting and a sqlite file held by another process.
func ConnectRetryableErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"dial tcp",
		"network is unreachable",
		"too many connections",
		"the database system is starting up",
		"server closed the connection",
		"database is locked",
	}
}

// ConnectConfig returns the schedule used for opening the store.
func ConnectConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = ConnectRetryableErrors()
	return cfg
}

// Validate rejects schedules Do cannot run.
func (c Config) Validate() error {
	switch {
	case c.MaxAttempts <= 0:
		return fmt.Errorf("retry: MaxAttempts must be positive, got %d", c.MaxAttempts)
	case c.InitialDelay < 0 || c.MaxDelay < 0:
		return fmt.Errorf("retry: delays must not be negative")
	case c.Multiplier < 1:
		return fmt.Errorf("retry: Multiplier must be at least 1, got %g", c.Multiplier)
	case c.Jitter < 0 || c.Jitter > 1:
		return fmt.Errorf("retry: Jitter must be within [0, 1], got %g", c.Jitter)
	}
	return nil
}

// Retryable reports whether err may succeed on another attempt.
func (c Config) Retryable(err error) bool {
	if err == nil {
		return false
	}
	var p *permanentError
	if errors.As(err, &p) {
		return false
	}
	if len(c.RetryableErrors) == 0 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range c.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// Backoff returns the wait after the given failed attempt (1-based), before jitter.
func (c Config) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	return time.Duration(d)
}

func (c Config) jittered(d time.Duration) time.Duration {
	if c.Jitter == 0 {
		return d
	}
	//nolint:gosec // jitter has no security requirement
	spread := float64(d) * c.Jitter * (rand.Float64()*2 - 1)
	return d + time.Duration(spread)
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err so that Do returns it without further attempts.
// Do hands back the original error, not the wrapper.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls fn until it succeeds or the schedule gives up.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for functions that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if err := cfg.Validate(); err != nil {
		return zero, err
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !cfg.Retryable(err) {
			if p, ok := err.(*permanentError); ok {
				return zero, p.err
			}
			return zero, err
		}
		if attempt == cfg.MaxAttempts {
			return zero, err
		}

		delay := cfg.jittered(cfg.Backoff(attempt))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
