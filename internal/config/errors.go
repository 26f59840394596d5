// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-buildenv/internal/validators"
	"github.com/MKhiriev/go-buildenv/models"
)

// ConfigurationError aggregates every problem found during one load.
//
// errors.Is matches the sentinel of each contained record
// ([validators.ErrInvalidType], [validators.ErrMissingRequired]) as well
// as the underlying cause of a malformed .env file.
type ConfigurationError struct {
	Records []models.ErrorRecord
	cause   error
}

// Error lists all records, one per line.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration: %d problem", len(e.Records))
	if len(e.Records) != 1 {
		b.WriteString("s")
	}
	for _, r := range e.Records {
		b.WriteString("\n  - ")
		b.WriteString(r.String())
	}
	return b.String()
}

// Unwrap returns the sentinel error of every record plus the cause, if any.
func (e *ConfigurationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Records)+1)
	for _, r := range e.Records {
		switch r.Kind {
		case models.InvalidType:
			errs = append(errs, validators.ErrInvalidType)
		case models.MissingRequired:
			errs = append(errs, validators.ErrMissingRequired)
		}
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// Has reports whether the error contains a record of kind k for name.
func (e *ConfigurationError) Has(k models.ErrorKind, name string) bool {
	for _, r := range e.Records {
		if r.Kind == k && r.Name == name {
			return true
		}
	}
	return false
}
