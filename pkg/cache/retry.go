package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks a failure to reach the cache backend, such as a timeout
// or a refused connection.
var ErrNetwork = errors.New("network error")

// transientError marks a backend failure worth another attempt.
type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }
func (e transientError) Unwrap() error { return e.err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return transientError{err}
}

// IsRetryable reports whether err, or an error it wraps, was marked by
// [Retryable].
func IsRetryable(err error) bool {
	return errors.As(err, new(transientError))
}

// backoff retries transient failures, doubling the pause after each attempt.
type backoff struct {
	attempts int
	pause    time.Duration
}

// redisBackoff gives a restarting redis about 300ms before a call fails.
var redisBackoff = backoff{attempts: 3, pause: 100 * time.Millisecond}

// do runs fn until it succeeds, fails permanently or runs out of attempts.
// The last error is returned; a done ctx ends the wait early.
func (b backoff) do(ctx context.Context, fn func() error) error {
	pause := b.pause
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt >= b.attempts {
			return err
		}
		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		pause *= 2
	}
}
