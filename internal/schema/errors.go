package schema

import "errors"

// Authoring errors returned by [New] and [Parse] when the definitions
// table itself is broken.
var (
	// ErrInvalidEntry indicates an entry with a bad name, unknown type or an
	// enum without values.
	ErrInvalidEntry = errors.New("invalid schema entry")
	// ErrDuplicateEntry indicates two entries declaring the same name.
	ErrDuplicateEntry = errors.New("duplicate schema entry")
)
