// Package retry runs an operation up to a fixed number of attempts with a
// fixed delay between them.
package retry

import (
	"context"
	"time"
)

// Config controls a retried call.
type Config struct {
	// Attempts is the total number of tries, including the first.
	// Values below 1 are treated as 1.
	Attempts int

	// Delay is the fixed pause between attempts.
	Delay time.Duration

	// Retryable decides whether a failure is worth another attempt.
	// nil retries every error.
	Retryable func(error) bool

	// OnAttemptFailure observes every failed attempt (1-based), before
	// the retry decision is made.
	OnAttemptFailure func(attempt int, err error)

	// Sleep replaces time.Sleep, for tests.
	Sleep func(time.Duration)
}

// Do calls fn until it succeeds, the attempts are exhausted, the error is
// not retryable, or the context ends. It returns the successful value or
// the zero value with the last error.
func Do[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if cfg.OnAttemptFailure != nil {
			cfg.OnAttemptFailure(attempt, err)
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		sleep(cfg.Delay)
	}

	return zero, lastErr
}
