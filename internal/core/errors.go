package core

import "errors"

var (
	// ErrInvalidInput is returned for an empty word or an unknown policy.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState is returned when an operation does not fit the current
	// state, e.g. a submission while a duplicate awaits resolution.
	ErrInvalidState = errors.New("invalid state")
)
