// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns merged raw variables into typed values using the
// schema registry.
//
// Validation never stops at the first problem: every coercion failure and
// every missing required variable is collected into the returned
// [Result], so a caller can report all of them at once. Deprecation
// notices are warnings and never fail a load.
package validators

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/go-buildenv/internal/logger"
	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/models"
)

// Result is the outcome of one validation pass.
type Result struct {
	// Values holds one validated value per name that ended up with a value.
	Values map[string]models.ValidatedValue

	// Warnings lists every deprecation notice in schema order, one per
	// deprecated name that was set.
	Warnings []string

	// Errors lists every problem found, in schema order.
	Errors []models.ErrorRecord
}

// OK reports whether the pass found no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// EnvValidator validates a merged environment against a schema registry.
type EnvValidator struct {
	log *logger.Logger
}

// NewEnvValidator constructs an EnvValidator. A nil log discards output.
func NewEnvValidator(log *logger.Logger) *EnvValidator {
	return &EnvValidator{log: logger.OrNop(log).GetChildLogger("validator")}
}

// Validate runs the three validation phases over merged:
//  1. deprecation patches, dispatched on each entry's status tag;
//  2. coercion, defaults and required checks for every schema entry,
//     except set deprecated names, which are kept as plain strings;
//  3. pass-through of names without a schema entry as plain strings.
//
// A nil registry treats every name as unknown.
func (v *EnvValidator) Validate(merged models.MergedEnvironment, registry *schema.Registry) Result {
	res := Result{Values: make(map[string]models.ValidatedValue, merged.Len())}
	entries := registry.Entries()

	patched, notes := v.applyDeprecations(merged, entries, &res)

	for _, e := range entries {
		raw, ok := merged.Lookup(e.Name)
		if !ok {
			raw, ok = patched[e.Name]
		}

		// A set deprecated name is never fatal. Its value is kept verbatim;
		// a propagated copy is checked under the replacement's type.
		if ok && e.Status.IsDeprecated() {
			res.Values[e.Name] = models.ValidatedValue{Name: e.Name, Value: models.StringValue(raw.Value), Source: raw.Source, Warnings: notes[e.Name]}
			continue
		}

		switch {
		case ok:
			val, valid := coerce(e.Type, raw.Value)
			if !valid {
				res.Errors = append(res.Errors, models.ErrorRecord{
					Kind:     models.InvalidType,
					Name:     e.Name,
					Expected: e.Type.String(),
					Raw:      raw.Value,
				})
				continue
			}
			res.Values[e.Name] = models.ValidatedValue{Name: e.Name, Value: val, Source: raw.Source, Warnings: notes[e.Name]}

		case e.HasDefault():
			val, valid := coerce(e.Type, *e.Default)
			if !valid {
				res.Errors = append(res.Errors, models.ErrorRecord{
					Kind:     models.InvalidType,
					Name:     e.Name,
					Expected: e.Type.String(),
					Raw:      *e.Default,
				})
				continue
			}
			v.log.Debug().Str("name", e.Name).Str("default", *e.Default).Msg("applied schema default")
			res.Values[e.Name] = models.ValidatedValue{Name: e.Name, Value: val, Source: models.SourceDefault, Warnings: notes[e.Name]}

		case e.Required:
			res.Errors = append(res.Errors, models.ErrorRecord{Kind: models.MissingRequired, Name: e.Name})
		}
	}

	for _, name := range merged.Names() {
		if _, known := registry.Lookup(name); known {
			continue
		}
		raw, _ := merged.Lookup(name)
		res.Values[name] = models.ValidatedValue{Name: name, Value: models.StringValue(raw.Value), Source: raw.Source}
	}

	// Replacements without an entry of their own stay free-form strings.
	for _, name := range sortedNames(patched) {
		if _, done := res.Values[name]; done {
			continue
		}
		if _, known := registry.Lookup(name); known {
			continue
		}
		raw := patched[name]
		res.Values[name] = models.ValidatedValue{Name: name, Value: models.StringValue(raw.Value), Source: raw.Source, Warnings: notes[name]}
	}

	return res
}

// applyDeprecations handles every deprecated entry that has a value. It
// returns the raw values propagated onto replacements that were unset, and
// the warnings to attach to each resulting value. Exactly one warning is
// produced per deprecated name that was set.
func (v *EnvValidator) applyDeprecations(
	merged models.MergedEnvironment,
	entries []models.SchemaEntry,
	res *Result,
) (map[string]models.RawVariable, map[string][]string) {
	patched := make(map[string]models.RawVariable)
	notes := make(map[string][]string)

	for _, e := range entries {
		if !e.Status.IsDeprecated() {
			continue
		}
		old, ok := merged.Lookup(e.Name)
		if !ok {
			continue
		}

		replacement := e.Status.Replacement
		var target, warning string

		switch {
		case replacement == "":
			target = e.Name
			warning = fmt.Sprintf("%s is deprecated and no longer used", e.Name)

		case merged.Has(replacement):
			target = replacement
			warning = fmt.Sprintf("%s is deprecated and ignored because %s is set", e.Name, replacement)

		default:
			target = replacement
			if from, taken := patched[replacement]; taken {
				warning = fmt.Sprintf("%s is deprecated and ignored because %s already received a value from %s",
					e.Name, replacement, from.Name)
				break
			}
			patched[replacement] = models.RawVariable{Name: old.Name, Value: old.Value, Source: old.Source}
			warning = fmt.Sprintf("%s is deprecated, use %s; value propagated", e.Name, replacement)
		}

		if e.Status.Reason != "" {
			warning += " (" + e.Status.Reason + ")"
		}
		notes[target] = append(notes[target], warning)
		res.Warnings = append(res.Warnings, warning)
	}

	return patched, notes
}

func sortedNames(m map[string]models.RawVariable) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
