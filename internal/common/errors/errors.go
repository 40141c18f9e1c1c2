// Package errors provides the standardized error types surfaced by the
// parse pipeline and mapped onto the HTTP API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmptyInput               ErrorCode = "EMPTY_INPUT"
	ErrCodeInputTooLong             ErrorCode = "INPUT_TOO_LONG"
	ErrCodeLLMProviderError         ErrorCode = "LLM_PROVIDER_ERROR"
	ErrCodeLLMResponseUnparsable    ErrorCode = "LLM_RESPONSE_UNPARSABLE"
	ErrCodeConfigurationUnavailable ErrorCode = "CONFIGURATION_UNAVAILABLE"
	ErrCodeInternal                 ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to the API status code: validation and
// length failures are the caller's fault, provider failures are upstream,
// everything else is internal.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeEmptyInput, ErrCodeInputTooLong:
		return http.StatusBadRequest
	case ErrCodeLLMProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewEmptyInputError reports a blank-after-trim input.
func NewEmptyInputError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyInput,
		Message:   "Input cannot be empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputTooLongError reports an input exceeding the configured maximum.
func NewInputTooLongError(length, max int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputTooLong,
		Message:   fmt.Sprintf("Input exceeds maximum length of %d characters", max),
		Details:   fmt.Sprintf("length: %d", length),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMProviderError reports a failed completion call.
func NewLLMProviderError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMProviderError,
		Message:   fmt.Sprintf("LLM provider '%s' call failed", provider),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMResponseUnparsableError reports a completion that was not valid JSON.
func NewLLMResponseUnparsableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMResponseUnparsable,
		Message:   "LLM response was not parsable JSON",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigurationUnavailableError reports a read before config.Load. Callers
// treat this as non-fatal and fall back to hardcoded defaults.
func NewConfigurationUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationUnavailable,
		Message:   "Configuration is not available",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandard extracts a StandardError from err, wrapping unknown errors as
// internal.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Code == code
}
