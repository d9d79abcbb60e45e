package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentacar/internal/booking"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromBookingError maps an engine error onto an HTTP status.
func FromBookingError(err error) *HTTPError {
	switch {
	case errors.Is(err, booking.ErrInvalidInterval):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrUnauthorized):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrConflict), errors.Is(err, booking.ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrVehicleUnavailable):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, booking.ErrBusy):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// WriteError renders an engine error as a JSON response. Busy responses get a
// Retry-After hint since they are the one retryable failure.
func WriteError(w http.ResponseWriter, err error) {
	httpErr := FromBookingError(err)
	w.Header().Set("Content-Type", "application/json")
	if httpErr.Code == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr)
}
