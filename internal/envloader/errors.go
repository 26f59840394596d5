package envloader

import "errors"

var (
	// ErrMalformedFile indicates that the .env file exists but could not be
	// parsed. The parser error is wrapped alongside it.
	ErrMalformedFile = errors.New("malformed env file")
	// ErrFillProcessEnv indicates that a value read from the .env file could
	// not be written into the process environment.
	ErrFillProcessEnv = errors.New("error filling process environment")
)
