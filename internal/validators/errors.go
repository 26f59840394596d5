package validators

import "errors"

var (
	// ErrInvalidType indicates a value that cannot be coerced to the type
	// declared by its schema entry.
	ErrInvalidType = errors.New("invalid type")
	// ErrMissingRequired indicates a required variable with no value and no
	// default.
	ErrMissingRequired = errors.New("missing required variable")
)
