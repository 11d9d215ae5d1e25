package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential is returned when the provider rejects the API key.
	// The key must be reconfigured before the next call.
	ErrInvalidCredential = errors.New("invalid API key")

	// ErrNotConfigured is returned when no API key is configured.
	ErrNotConfigured = errors.New("generation is not configured")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// TransientError represents a temporary error that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// IsTransient returns true if the error is transient and should be retried.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// classifyStatus marks err as a credential or transient failure according
// to the HTTP status. Other statuses return err unchanged.
func classifyStatus(status int, err error) error {
	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	case status == 408 || status == 429 || status >= 500:
		return NewTransientError(err)
	default:
		return err
	}
}
