package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable reports that a remote cache could not be reached.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError marks a transient failure worth another attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err so that RetryWithBackoff tries again. It returns nil
// for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err was wrapped by Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// backoff is a capped exponential retry schedule.
type backoff struct {
	attempts int
	delay    time.Duration // before the first retry, doubled after each
}

// retryPolicy applies to every Redis call.
var retryPolicy = backoff{attempts: 3, delay: 100 * time.Millisecond}

// RetryWithBackoff calls fn until it succeeds, returns an error that is not
// retryable, or the attempts run out. It gives up early with ctx.Err() when
// ctx ends while waiting.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return retryPolicy.do(ctx, fn)
}

func (b backoff) do(ctx context.Context, fn func() error) error {
	wait := b.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt >= b.attempts {
			return err
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
