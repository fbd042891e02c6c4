package providers

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a single credential's attempt failed. Every
// kind is handled the same way by the invoker (skip to the next credential);
// the kind only drives the per-attempt warning.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureQuotaExhausted
	FailureAuthRejected
	FailureServerError
)

func (k FailureKind) String() string {
	switch k {
	case FailureQuotaExhausted:
		return "quota_exhausted"
	case FailureAuthRejected:
		return "auth_rejected"
	case FailureServerError:
		return "server_error"
	default:
		return "other"
	}
}

// AttemptError wraps a provider failure with its classification.
type AttemptError struct {
	Kind FailureKind
	Err  error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("attempt failed (%s): %v", e.Kind, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps an HTTP status code from the remote generation service
// onto the closed failure taxonomy.
func ClassifyStatus(code int) FailureKind {
	switch {
	case code == 429:
		return FailureQuotaExhausted
	case code == 401 || code == 403:
		return FailureAuthRejected
	case code >= 500:
		return FailureServerError
	default:
		return FailureOther
	}
}

// Classify extracts the FailureKind from an attempt error, defaulting to
// FailureOther for anything unclassified.
func Classify(err error) FailureKind {
	var ae *AttemptError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return FailureOther
}
