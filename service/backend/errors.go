package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a backend failure. Unauthorized is a signal for the
// session layer to force re-authentication; this package only reports it.
type Kind int

const (
	KindNetwork Kind = iota
	KindUnauthorized
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server"
	default:
		return "network"
	}
}

// Error is a typed backend failure. Nothing here is fatal to the process:
// every failure is local to one operation and recoverable by retry.
type Error struct {
	Kind   Kind
	Op     string
	Status int // HTTP status, 0 for transport failures
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend: %s: %s (status %d)", e.Op, e.Kind, e.Status)
	}
	return fmt.Sprintf("backend: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is, or wraps, an unauthorized backend
// failure.
func IsUnauthorized(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind == KindUnauthorized
	}
	return false
}
