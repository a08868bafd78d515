// Package httpx provides the HTTP boundary for the jobly API: JSON helpers,
// middleware, and per-entity handlers.
package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and
// handles errors. Returns true if successful, false if there was an error
// (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteAppError(w, apperrors.Validation("invalid JSON body: "+err.Error()))
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// errorBody is the standard error envelope: status plus a message that is
// either a single string or, for validation failures with multiple
// complaints, a list of strings.
type errorBody struct {
	Status  int `json:"status"`
	Message any `json:"message"`
}

// unauthorizedBody is the one deviation from errorBody: the 401 path writes
// only the message, no status field. External clients match on this exact
// shape.
type unauthorizedBody struct {
	Message string `json:"message"`
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidState:
		return http.StatusBadRequest
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeUnavailable, apperrors.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteAppError serializes a service error to the wire.
func WriteAppError(w http.ResponseWriter, err error) {
	if apperrors.IsUnauthorized(err) {
		WriteJSON(w, http.StatusUnauthorized, unauthorizedBody{Message: "Unauthorized"})
		return
	}

	code := apperrors.GetCode(err)
	status := statusForCode(code)

	var message any = http.StatusText(status)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if len(appErr.Messages) > 0 {
			message = appErr.Messages
		} else if appErr.Message != "" {
			message = appErr.Message
		}
	}
	if code == apperrors.ErrCodeInternal {
		// Never leak internals to the client.
		message = "Internal Server Error"
	}

	WriteJSON(w, status, errorBody{Status: status, Message: message})
}

// WriteUnauthorized writes the fixed 401 body used by the route gates.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, unauthorizedBody{Message: "Unauthorized"})
}
