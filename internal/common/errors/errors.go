// Package errors provides standardized error handling for the weather relay.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrCodeServerMisconfigured ErrorCode = "SERVER_MISCONFIGURED"
	ErrCodeUpstreamError       ErrorCode = "UPSTREAM_ERROR"
	ErrCodeTransportFailure    ErrorCode = "TRANSPORT_FAILURE"
	ErrCodeMalformedUpstream   ErrorCode = "MALFORMED_UPSTREAM_RESPONSE"
)

// Client-facing messages. These are part of the API contract and must not
// carry internal detail.
const (
	MsgCityRequired     = "City parameter is required."
	MsgMissingAPIKey    = "Server is not configured with the API key."
	MsgUpstreamFallback = "Error fetching weather data from external API"
	MsgTransportFailure = "Failed to fetch weather data."
)

// RelayError represents a structured application error. Message is what the
// caller sees; Details stays in the logs.
type RelayError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("RelayError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus returns the status code the error surfaces as.
func (e *RelayError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// ==========================
// Error Constructors
// ==========================

// NewInvalidRequestError creates a caller-input validation error (400).
func NewInvalidRequestError(message string) *RelayError {
	return &RelayError{
		Code:      ErrCodeInvalidRequest,
		Message:   message,
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingCityError creates the fixed missing-city error.
func NewMissingCityError() *RelayError {
	return NewInvalidRequestError(MsgCityRequired)
}

// NewServerMisconfiguredError creates the missing-credential error (500).
// This indicates a deployment defect, not a caller defect.
func NewServerMisconfiguredError() *RelayError {
	return &RelayError{
		Code:      ErrCodeServerMisconfigured,
		Message:   MsgMissingAPIKey,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError forwards a provider failure: status code verbatim, the
// provider's message when it sent one, a generic fallback otherwise.
func NewUpstreamError(status int, providerMessage string) *RelayError {
	message := providerMessage
	if message == "" {
		message = MsgUpstreamFallback
	}
	return &RelayError{
		Code:      ErrCodeUpstreamError,
		Message:   message,
		Details:   fmt.Sprintf("provider status: %d", status),
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportFailureError creates an outbound call/decode failure (500).
// The underlying cause is never exposed to the caller.
func NewTransportFailureError(err error) *RelayError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &RelayError{
		Code:      ErrCodeTransportFailure,
		Message:   MsgTransportFailure,
		Details:   details,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedUpstreamError flags a 2xx provider body that fails shape
// validation (e.g. empty condition list). Surfaced with the same generic
// message as a transport failure so the client contract stays stable.
func NewMalformedUpstreamError(details string) *RelayError {
	return &RelayError{
		Code:      ErrCodeMalformedUpstream,
		Message:   MsgTransportFailure,
		Details:   details,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// IsCode reports whether err is a RelayError with the given code.
func IsCode(err error, code ErrorCode) bool {
	relayErr, ok := err.(*RelayError)
	return ok && relayErr.Code == code
}

// IsCallerFault reports whether the error is a caller defect (4xx class).
func IsCallerFault(code ErrorCode) bool {
	return code == ErrCodeInvalidRequest
}
