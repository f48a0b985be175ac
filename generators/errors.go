package generators

import "errors"

var (
	// ErrBackendUnavailable marks transport or service failures.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrBackendTimeout marks a generate call exceeding its deadline.
	ErrBackendTimeout = errors.New("backend timeout")
)
