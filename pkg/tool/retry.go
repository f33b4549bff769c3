package tool

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	retryBase   = 250 * time.Millisecond
	retryCap    = 4 * time.Second
	retryJitter = 0.2
	retryMax    = 3
)

// transientErr marks a dispatch failure the broker may retry.
type transientErr struct {
	err error
}

func (e *transientErr) Error() string { return e.err.Error() }
func (e *transientErr) Unwrap() error { return e.err }

// Transient wraps an error to tell the broker the failure is worth
// retrying (5xx, timeout, connection reset). Unwrapped errors are
// treated as permanent.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientErr{err: err}
}

func isTransient(err error) bool {
	var t *transientErr
	return errors.As(err, &t)
}

// newRetryBackoff builds the broker's retry policy: exponential backoff
// from 250ms capped at 4s with ±20% jitter, at most 3 retries.
func newRetryBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBase
	bo.MaxInterval = retryCap
	bo.RandomizationFactor = retryJitter
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0
	return backoff.WithMaxRetries(bo, retryMax)
}
