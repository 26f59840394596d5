// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// TypeKind enumerates the value types a schema entry can declare.
type TypeKind int

const (
	// TypeString keeps the raw value verbatim.
	TypeString TypeKind = iota + 1

	// TypeBool is true for any non-empty value and false for the empty string.
	TypeBool

	// TypeNumber accepts any decimal or floating point number.
	TypeNumber

	// TypeURL accepts an absolute URL with both scheme and host.
	TypeURL

	// TypePort accepts an integer between 0 and 65535.
	TypePort

	// TypeEnum accepts one of a fixed set of strings.
	TypeEnum
)

// VarType is the declared type of a schema entry. Values is only used by
// TypeEnum and lists the accepted members.
type VarType struct {
	Kind   TypeKind
	Values []string
}

// String returns the name of the type as it appears in error messages,
// e.g. "port" or "enum(auto|backend)".
func (t VarType) String() string {
	switch t.Kind {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeURL:
		return "url"
	case TypePort:
		return "port"
	case TypeEnum:
		return fmt.Sprintf("enum(%s)", strings.Join(t.Values, "|"))
	default:
		return "unknown"
	}
}

// Allows reports whether v is a member of an enum type. It is always false
// for non-enum types.
func (t VarType) Allows(v string) bool {
	if t.Kind != TypeEnum {
		return false
	}
	for _, member := range t.Values {
		if member == v {
			return true
		}
	}
	return false
}

// StatusKind is the tag of an entry Status.
type StatusKind int

const (
	// StatusActive marks an entry that is in normal use.
	StatusActive StatusKind = iota + 1

	// StatusDeprecated marks an entry that is still read but should no
	// longer be set. Its value may be propagated to a replacement.
	StatusDeprecated
)

// Status is a tagged variant describing the lifecycle of an entry.
// Replacement and Reason are meaningful only when Kind is StatusDeprecated.
type Status struct {
	Kind StatusKind

	// Replacement is the name that supersedes a deprecated entry.
	// Empty when the variable was removed without a successor.
	Replacement string

	// Reason is free text appended to deprecation warnings.
	Reason string
}

// Active returns the status of a regular entry.
func Active() Status {
	return Status{Kind: StatusActive}
}

// Deprecated returns the status of an entry superseded by replacement.
// An empty replacement means the variable is no longer used at all.
func Deprecated(replacement, reason string) Status {
	return Status{Kind: StatusDeprecated, Replacement: replacement, Reason: reason}
}

// IsDeprecated reports whether the status carries the deprecated tag.
func (s Status) IsDeprecated() bool {
	return s.Kind == StatusDeprecated
}

// SchemaEntry declares one known variable.
type SchemaEntry struct {
	// Name is the canonical flat variable name.
	Name string

	// Type drives coercion of the raw string value.
	Type VarType

	// Default is used when the variable is unset. Nil means no default.
	Default *string

	// Required makes a missing value with no default a load error.
	Required bool

	// Status tells whether the entry is active or deprecated.
	Status Status

	// Description and Example document the entry for humans.
	Description string
	Example     string
}

// HasDefault reports whether the entry declares a default value.
func (e SchemaEntry) HasDefault() bool {
	return e.Default != nil
}
