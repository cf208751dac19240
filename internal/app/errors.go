package app

import "errors"

// ErrNilRenderer and related errors describe run-loop setup failures.
var (
	ErrNilRenderer = errors.New("renderer is required")
	ErrNilState    = errors.New("state is required")
)
