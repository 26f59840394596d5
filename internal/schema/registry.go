// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema holds the static table of known environment variables:
// their types, defaults, required flags and deprecations.
//
// The table is loaded once at startup, either from the built-in
// definitions ([Default]) or from a YAML file ([LoadFile]), and is
// read-only afterwards. Names without an entry are not rejected; the
// schema only adds typing and checks for the names it knows.
package schema

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-buildenv/internal/naming"
	"github.com/MKhiriev/go-buildenv/models"
)

// Registry is an ordered, immutable set of schema entries indexed by name.
type Registry struct {
	entries []models.SchemaEntry
	index   map[string]int
}

// New builds a Registry from entries, preserving their order.
//
// Broken entries (invalid name, duplicate name, enum without values, a
// deprecation pointing at itself) are collected and returned together as
// one joined error. A deprecated entry whose replacement has no entry of
// its own is only reported in the returned warnings: the replacement is
// then handled as a free-form string.
func New(entries []models.SchemaEntry) (*Registry, []string, error) {
	r := &Registry{
		entries: make([]models.SchemaEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	var errs error
	for _, e := range entries {
		if err := checkEntry(e); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if _, ok := r.index[e.Name]; ok {
			errs = errors.Join(errs, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Name))
			continue
		}
		r.index[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	if errs != nil {
		return nil, nil, errs
	}

	var warnings []string
	for _, e := range r.entries {
		if !e.Status.IsDeprecated() || e.Status.Replacement == "" {
			continue
		}
		if _, ok := r.index[e.Status.Replacement]; !ok {
			warnings = append(warnings, fmt.Sprintf(
				"%s is deprecated in favour of %s, which has no schema entry; it is treated as a plain string",
				e.Name, e.Status.Replacement))
		}
	}

	return r, warnings, nil
}

func checkEntry(e models.SchemaEntry) error {
	if !naming.IsValidName(e.Name) {
		return fmt.Errorf("%w: name %q does not match the naming convention", ErrInvalidEntry, e.Name)
	}
	if e.Type.Kind < models.TypeString || e.Type.Kind > models.TypeEnum {
		return fmt.Errorf("%w: %s has no type", ErrInvalidEntry, e.Name)
	}
	if e.Type.Kind == models.TypeEnum && len(e.Type.Values) == 0 {
		return fmt.Errorf("%w: enum %s has no values", ErrInvalidEntry, e.Name)
	}
	if e.Status.IsDeprecated() && e.Status.Replacement != "" {
		if e.Status.Replacement == e.Name {
			return fmt.Errorf("%w: %s is deprecated in favour of itself", ErrInvalidEntry, e.Name)
		}
		if !naming.IsValidName(e.Status.Replacement) {
			return fmt.Errorf("%w: %s has invalid replacement %q", ErrInvalidEntry, e.Name, e.Status.Replacement)
		}
	}
	return nil
}

// Lookup returns the entry declared for name. A nil Registry knows no names.
func (r *Registry) Lookup(name string) (models.SchemaEntry, bool) {
	if r == nil {
		return models.SchemaEntry{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return models.SchemaEntry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in declaration order.
func (r *Registry) Entries() []models.SchemaEntry {
	if r == nil {
		return nil
	}
	out := make([]models.SchemaEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
