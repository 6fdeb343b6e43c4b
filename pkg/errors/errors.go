package errors

import (
	stderrors "errors"
	"reflect"
	"time"
)

func NewRetryableError(message string, retryAfter time.Duration) *RetryableError {
	return &RetryableError{
		Message:    message,
		retryAfter: retryAfter,
	}
}

// WrapRetryable marks err as worth another attempt after retryAfter.
func WrapRetryable(err error, retryAfter time.Duration) *RetryableError {
	return &RetryableError{
		Message:    err.Error(),
		Err:        err,
		retryAfter: retryAfter,
	}
}

type RetryableError struct {
	Message    string
	Err        error
	retryAfter time.Duration
}

func (e *RetryableError) Error() string {
	return e.Message
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

func (e *RetryableError) RetryAfter() time.Duration {
	return e.retryAfter
}

func (e *RetryableError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// IsRetryable reports whether err, or any error it wraps, is a RetryableError.
// The returned duration is the retry hint carried by the first one found.
func IsRetryable(err error) (time.Duration, bool) {
	var retryable *RetryableError
	if stderrors.As(err, &retryable) {
		return retryable.RetryAfter(), true
	}

	return 0, false
}
