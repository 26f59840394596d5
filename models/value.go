// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// ValueKind is the tag of a typed Value.
type ValueKind int

const (
	// KindString holds text, including URLs and enum members.
	KindString ValueKind = iota + 1

	// KindBool holds a boolean.
	KindBool

	// KindNumber holds a float64, used for numbers and ports.
	KindNumber
)

// Value is the sum type produced by coercion: exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
	Num  float64
}

// StringValue returns a KindString value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NumberValue returns a KindNumber value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Any returns the payload as a plain Go value: string, bool or float64.
func (v Value) Any() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num
	default:
		return v.Str
	}
}

// String formats the payload back into the flat string form. Booleans
// render as "true" and "false", numbers without a trailing exponent.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}

// ValidatedValue is the result of validating a single variable.
type ValidatedValue struct {
	Name     string
	Value    Value
	Source   Source
	Warnings []string
}
