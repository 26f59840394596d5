// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ErrorKind classifies a configuration problem found during a load.
type ErrorKind int

const (
	// InvalidType means a value could not be coerced to its declared type.
	InvalidType ErrorKind = iota + 1

	// MissingRequired means a required variable had no value and no default.
	MissingRequired

	// MalformedFile means the .env file could not be parsed.
	MalformedFile
)

// String returns the kind name used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case InvalidType:
		return "invalid type"
	case MissingRequired:
		return "missing required"
	case MalformedFile:
		return "malformed file"
	default:
		return "unknown"
	}
}

// ErrorRecord describes one problem. Expected and Raw are filled for
// InvalidType, Detail carries parser output for MalformedFile.
type ErrorRecord struct {
	Kind     ErrorKind
	Name     string
	Expected string
	Raw      string
	Detail   string
}

// String renders the record as one line of a load failure message.
func (r ErrorRecord) String() string {
	switch r.Kind {
	case InvalidType:
		return fmt.Sprintf("%s: expected %s, got %q", r.Name, r.Expected, r.Raw)
	case MissingRequired:
		return fmt.Sprintf("%s: required but not set", r.Name)
	case MalformedFile:
		return fmt.Sprintf("%s: %s", r.Name, r.Detail)
	default:
		return r.Name
	}
}
