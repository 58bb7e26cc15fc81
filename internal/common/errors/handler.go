// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler converts failures into the JSON error body at the HTTP
// boundary. Every failure goes through here; nothing propagates uncaught to
// the transport layer.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Error string `json:"error"`
}

// WriteError normalizes err to a RelayError, logs it with its diagnostic
// details, and writes the client-facing JSON body.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, err error) {
	relayErr := h.normalizeError(err)

	h.logError(relayErr)

	WriteJSON(w, relayErr.HTTPStatus(), errorBody{Error: relayErr.Message})
}

// normalizeError ensures we always have a RelayError. Anything unexpected is
// treated as a transport failure so no internal detail leaks.
func (h *ErrorHandler) normalizeError(err error) *RelayError {
	if relayErr, ok := err.(*RelayError); ok {
		return relayErr
	}
	return &RelayError{
		Code:      ErrCodeTransportFailure,
		Message:   MsgTransportFailure,
		Details:   err.Error(),
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(relayErr *RelayError) {
	fields := map[string]interface{}{
		"errorCode": string(relayErr.Code),
		"status":    relayErr.HTTPStatus(),
		"details":   relayErr.Details,
	}

	if IsCallerFault(relayErr.Code) {
		h.logger.Warn("request rejected", fields)
		return
	}
	h.logger.Error("request failed", fields)
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
