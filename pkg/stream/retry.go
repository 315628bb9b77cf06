package stream

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/matzehuels/ripple/pkg/errors"
)

// Retry defaults for broker calls.
const (
	DefaultAttempts = 3
	DefaultDelay    = 200 * time.Millisecond
)

// transientError marks a failure worth another attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// retry runs fn up to attempts times, doubling delay after each failure.
// Only errors wrapped in transientError are retried.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*transientError)) {
			return err
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// transient wraps err unless ctx is already done.
func transient(ctx context.Context, err error) error {
	if err == nil || ctx.Err() != nil {
		return err
	}
	return &transientError{err: err}
}

// Ping checks that the broker is reachable, retrying with backoff.
func Ping(ctx context.Context, client redis.UniversalClient, attempts int, delay time.Duration) error {
	err := retry(ctx, attempts, delay, func() error {
		return transient(ctx, client.Ping(ctx).Err())
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNetwork, unwrapTransient(err), "ping redis")
	}
	return nil
}

func unwrapTransient(err error) error {
	var t *transientError
	if errors.As(err, &t) {
		return t.err
	}
	return err
}
