package shortcut

import "errors"

var (
	// ErrEmptyAccelerator is returned for "" or whitespace-only accelerators.
	ErrEmptyAccelerator = errors.New("empty accelerator")

	// ErrUnknownModifier is returned when a modifier is not supported on this platform.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrUnknownKey is returned when the final token names no supported key.
	ErrUnknownKey = errors.New("unknown key")

	// ErrMissingKey is returned when an accelerator has modifiers but no key,
	// or more than one key.
	ErrMissingKey = errors.New("accelerator needs exactly one key")

	// ErrAlreadyRegistered is returned when the same accelerator is bound twice.
	ErrAlreadyRegistered = errors.New("accelerator already registered")
)
