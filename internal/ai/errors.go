package ai

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a provider call failed. Callers use the kind to
// decide between retrying, falling back and surfacing the error.
type FailureKind string

const (
	// FailureUnavailable covers network errors, connection resets and
	// provider-side timeouts.
	FailureUnavailable FailureKind = "unavailable"
	// FailureQuotaExceeded means the provider rejected the call for rate or
	// quota reasons.
	FailureQuotaExceeded FailureKind = "quota_exceeded"
	// FailureInvalidCredentials means the configured API key was rejected.
	FailureInvalidCredentials FailureKind = "invalid_credentials"
	// FailureUnknown is every provider failure that fits no other kind.
	FailureUnknown FailureKind = "unknown"
)

// ProviderError wraps a failed call to the generative-text provider with its
// classification. The gateway never retries; policy belongs to the caller.
type ProviderError struct {
	Kind FailureKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider failure (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError builds a classified provider failure.
func NewProviderError(kind FailureKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}

// StructuralError signals that provider output could not be decoded into the
// expected typed shape. It is a value to branch on, not a panic.
type StructuralError struct {
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("structural failure: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("structural failure: %s", e.Reason)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func newStructuralError(reason string, err error) *StructuralError {
	return &StructuralError{Reason: reason, Err: err}
}

// IsStructural reports whether err is (or wraps) a structural failure.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// IsProviderFailure reports whether err is (or wraps) a classified provider
// failure and returns its kind.
func IsProviderFailure(err error) (FailureKind, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// ErrBatchLengthMismatch rejects batch evaluations whose question and answer
// lists differ in length. It is raised before any provider call is made.
var ErrBatchLengthMismatch = errors.New("number of questions and answers must match")
