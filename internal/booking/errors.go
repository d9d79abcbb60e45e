package booking

import "errors"

// Engine errors. Handlers and callers match these with errors.Is; only
// ErrBusy is worth retrying.
var (
	ErrInvalidInterval    = errors.New("invalid interval")
	ErrConflict           = errors.New("interval conflicts with an existing reservation")
	ErrVehicleUnavailable = errors.New("vehicle unknown or retired")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrUnauthorized       = errors.New("actor not allowed to perform this action")
	ErrNotFound           = errors.New("reservation not found")
	ErrBusy               = errors.New("vehicle booking in progress, retry later")
)

// IsRetryable reports whether the caller should back off and try again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrBusy)
}

// IsValidationError reports whether the request itself was malformed.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}

// IsConflictError reports whether the request lost to existing state.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidTransition)
}
