// Package retry wraps store and network calls in exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
)

// Policy configures the backoff loop. Zero MaxRetries means the loop is
// bounded by MaxElapsedTime only.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
	// OnRetry, if set, is called before each wait with the failed attempt's error.
	OnRetry func(err error, next time.Duration)
}

// DefaultPolicy is used for database reads and remote translation calls.
func DefaultPolicy() Policy {
	return Policy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  10 * time.Second,
		MaxRetries:      5,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// IsRetryable reports whether err may succeed on a later attempt.
// Application errors (validation, not found, forbidden, duplicate) and
// context cancellation are final.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		eb.MaxInterval = p.MaxInterval
	}
	eb.MaxElapsedTime = p.MaxElapsedTime

	var b backoff.BackOff = eb
	if p.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, p.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}

// Do runs op until it succeeds, returns a non-retryable error, or the policy
// gives up. The last error is returned; a cancelled ctx returns ctx.Err().
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	attempt := func() error {
		err := op(ctx)
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if p.OnRetry != nil {
		notify = backoff.Notify(p.OnRetry)
	}
	return backoff.RetryNotify(attempt, p.backOff(ctx), notify)
}

// DoValue is Do for operations that return a value.
func DoValue[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
