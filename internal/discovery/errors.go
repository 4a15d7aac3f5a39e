package discovery

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("provider permission denied")
	ErrInvalidRequest   = errors.New("provider invalid request")
	ErrRateLimited      = errors.New("provider rate limited")
	ErrTransient        = errors.New("provider transient failure")
)

// ValidationError rejects a Discover call before any provider traffic.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrorClass returns the provider error class of err. Anything unrecognised
// is treated as transient.
func ErrorClass(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrPermissionDenied):
		return ErrPermissionDenied
	case errors.Is(err, ErrInvalidRequest):
		return ErrInvalidRequest
	case errors.Is(err, ErrRateLimited):
		return ErrRateLimited
	default:
		return ErrTransient
	}
}

func className(class error) string {
	switch class {
	case ErrPermissionDenied:
		return "permission_denied"
	case ErrInvalidRequest:
		return "invalid_request"
	case ErrRateLimited:
		return "rate_limited"
	case ErrTransient:
		return "transient"
	}
	return "unknown"
}
