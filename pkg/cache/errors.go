package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound reports that the cache store itself (e.g. its directory)
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss reports that GetJSON found no usable entry.
	ErrCacheMiss = errors.New("cache miss")
)

// RetryableError marks a transient backend failure, such as a dropped redis
// connection, that is worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as transient. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err's chain contains a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const retryAttempts = 3

// retryDelay is the wait before the second attempt; it doubles afterwards.
var retryDelay = 100 * time.Millisecond

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// Retryable, or retryAttempts calls have failed. The final error is returned
// without its RetryableError wrapper. Cancelling ctx aborts the wait between
// attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		var re *RetryableError
		if err == nil || !errors.As(err, &re) {
			return err
		}
		if attempt == retryAttempts {
			return re.Err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
