// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Source identifies where the effective value of a variable came from.
// The order of the constants mirrors the precedence used by the loader:
// process-set beats file-set, file-set beats schema default.
type Source int

const (
	// SourceProcess marks a value that was already present in the process
	// environment when the load started.
	SourceProcess Source = iota + 1

	// SourceFile marks a value read from the .env file of the project.
	SourceFile

	// SourceDefault marks a value taken from the schema definition because
	// neither the process nor the file provided one.
	SourceDefault
)

// String returns a lower-case label for s.
func (s Source) String() string {
	switch s {
	case SourceProcess:
		return "process"
	case SourceFile:
		return "file"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// RawVariable is a single untyped name/value pair after precedence has been
// resolved. Name always matches the strict naming pattern.
type RawVariable struct {
	Name   string
	Value  string
	Source Source
}

// MergedEnvironment is the precedence-resolved, flat view of all recognised
// variables for one load. It holds at most one RawVariable per name and
// cannot be modified after construction.
type MergedEnvironment struct {
	vars  map[string]RawVariable
	names []string
}

// NewMergedEnvironment builds a MergedEnvironment from vars. When a name
// appears more than once the first occurrence wins, so callers pass
// higher-precedence variables first.
func NewMergedEnvironment(vars ...RawVariable) MergedEnvironment {
	m := MergedEnvironment{
		vars:  make(map[string]RawVariable, len(vars)),
		names: make([]string, 0, len(vars)),
	}
	for _, v := range vars {
		if _, ok := m.vars[v.Name]; ok {
			continue
		}
		m.vars[v.Name] = v
		m.names = append(m.names, v.Name)
	}
	sort.Strings(m.names)

	return m
}

// Lookup returns the variable stored under name.
func (m MergedEnvironment) Lookup(name string) (RawVariable, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Has reports whether name has a value, including an empty one.
func (m MergedEnvironment) Has(name string) bool {
	_, ok := m.vars[name]
	return ok
}

// Names returns all variable names in lexical order.
func (m MergedEnvironment) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of variables.
func (m MergedEnvironment) Len() int {
	return len(m.names)
}
