// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package naming converts between flat UPPER_SNAKE variable names and the
// camel-cased keys handed to configuration consumers.
//
// A flat name is split on underscores into words. The first word is
// lower-cased, every following word that starts with a letter is
// capitalised, and the results are concatenated:
//
//	UPWARD_JS_HOST -> upwardJsHost
//
// Words that cannot carry a case boundary (empty words produced by "__" or
// a trailing "_", and words starting with a digit) keep an explicit "_"
// marker, so the translation is lossless for every name accepted by
// [IsValidName]:
//
//	IMAGE_2X_WIDTH -> image_2xWidth -> IMAGE_2X_WIDTH
package naming

import (
	"regexp"
	"strings"
)

// namePattern is the strict naming convention. Names outside of it are
// ignored by the loader without a warning.
var namePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// IsValidName reports whether name follows the strict naming convention.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Words splits a flat name on underscore boundaries. Consecutive or
// trailing underscores yield empty words.
func Words(name string) []string {
	return strings.Split(name, "_")
}

// ToNamespace converts a flat name into a single camel-cased key.
func ToNamespace(name string) string {
	return joinCamel(Words(name))
}

// ToFlat converts a camel-cased key produced by ToNamespace back into its
// flat form. Every upper-case letter opens a new word, every "_" is kept.
func ToFlat(camel string) string {
	var b strings.Builder
	b.Grow(len(camel) + 4)

	for i, r := range camel {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(toUpper(r))
	}

	return b.String()
}

// SectionWords returns the flat words a section name stands for, e.g.
// "upwardJs" -> ["UPWARD", "JS"].
func SectionWords(section string) []string {
	if section == "" {
		return nil
	}
	return Words(ToFlat(section))
}

// ToSection matches name against prefixWords on word boundaries. When the
// name starts with all prefix words and has at least one word left, it
// returns the camel-cased section key and the camel-cased property name.
//
// UPWARD_JS_HOST matches ["UPWARD", "JS"] with property "host";
// UPWARDJS_HOST and UPWARD_JS do not match.
func ToSection(name string, prefixWords []string) (section, property string, ok bool) {
	if len(prefixWords) == 0 {
		return "", "", false
	}

	words := Words(name)
	if len(words) <= len(prefixWords) {
		return "", "", false
	}
	for i, w := range prefixWords {
		if words[i] != w {
			return "", "", false
		}
	}

	return joinCamel(prefixWords), joinCamel(words[len(prefixWords):]), true
}

func joinCamel(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		if w == "" || !isLetter(w[0]) {
			b.WriteByte('_')
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
