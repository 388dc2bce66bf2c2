// Package domain contains the core domain models and types.
package domain

import (
	"errors"
	"fmt"
)

// ErrKind is the closed set of failure categories in the pipeline.
// Every error crossing a component boundary carries exactly one kind,
// and the HTTP error translator matches on it exhaustively.
type ErrKind int

const (
	// KindInternal is the zero value for unclassified failures.
	KindInternal ErrKind = iota

	// KindValidation marks request payloads rejected before any external call.
	KindValidation

	// KindNetwork marks DNS and connection failures while fetching a URL.
	KindNetwork

	// KindNotFound marks a fetch target that does not exist.
	KindNotFound

	// KindTimeout marks a fetch that exceeded its deadline.
	KindTimeout

	// KindHTTPStatus marks a non-2xx response from a fetched page.
	KindHTTPStatus

	// KindUnsupportedType marks an upload with an extension we cannot read.
	KindUnsupportedType

	// KindEmptyContent marks extraction that produced no usable text.
	KindEmptyContent

	// KindUpstream marks any failure of the AI completion service.
	KindUpstream
)

// String returns a stable name for the kind, used in logs.
func (k ErrKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindHTTPStatus:
		return "http_status"
	case KindUnsupportedType:
		return "unsupported_type"
	case KindEmptyContent:
		return "empty_content"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Sentinel errors for common failure cases.
var (
	// ErrEmptyContent indicates extraction produced no usable text.
	ErrEmptyContent = errors.New("no text content found")

	// ErrUnsupportedType indicates the file extension is not pdf/doc/docx.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrUpstreamTimeout indicates the AI service did not respond in time.
	ErrUpstreamTimeout = errors.New("AI service timeout")

	// ErrUpstreamUnavailable indicates the AI service is not available.
	ErrUpstreamUnavailable = errors.New("AI service unavailable")

	// ErrRateLimited indicates the AI service rejected us for volume.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PipelineError wraps an error with its kind and the operation that failed.
type PipelineError struct {
	// Kind categorizes the failure.
	Kind ErrKind

	// Op is the operation that failed.
	Op string

	// Err is the underlying error.
	Err error

	// Status carries the upstream HTTP status for KindHTTPStatus errors.
	Status int

	// Retryable indicates if the operation can be retried.
	Retryable bool

	// Details lists individual violations for KindValidation errors.
	Details []string
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// E creates a new PipelineError.
func E(kind ErrKind, op string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Err: err}
}

// Retryable marks an error as safe to retry.
func Retryable(kind ErrKind, op string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Err: err, Retryable: true}
}

// ValidationError builds a KindValidation error carrying every violated rule.
func ValidationError(op string, details []string) *PipelineError {
	return &PipelineError{
		Kind:    KindValidation,
		Op:      op,
		Err:     fmt.Errorf("validation failed: %d violation(s)", len(details)),
		Details: details,
	}
}

// KindOf extracts the kind from an error chain. Unwrapped errors are internal.
func KindOf(err error) ErrKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}
