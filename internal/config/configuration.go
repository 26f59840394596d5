// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sort"

	"github.com/MKhiriev/go-buildenv/internal/logger"
	"github.com/MKhiriev/go-buildenv/internal/naming"
	"github.com/MKhiriev/go-buildenv/models"
)

// ModeVariable is the reserved variable that selects the build mode.
const ModeVariable = "NODE_ENV"

// Recognised values of ModeVariable.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Configuration is an immutable snapshot of one load. All methods return
// fresh maps and slices, so a Configuration can be shared between
// goroutines without locking.
type Configuration struct {
	values   map[string]models.ValidatedValue
	names    []string
	nodeEnv  string
	warnings []string
	log      *logger.Logger
}

func newConfiguration(values map[string]models.ValidatedValue, warnings []string, log *logger.Logger) *Configuration {
	c := &Configuration{
		values:   make(map[string]models.ValidatedValue, len(values)),
		names:    make([]string, 0, len(values)),
		warnings: append([]string(nil), warnings...),
		log:      logger.OrNop(log),
	}
	for name, v := range values {
		c.values[name] = v
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	if mode, ok := c.values[ModeVariable]; ok {
		c.nodeEnv = mode.Value.String()
	}

	return c
}

// All returns every value keyed by its camel-cased flat name, e.g.
// UPWARD_JS_HOST under "upwardJsHost". It is meant for debugging: the long
// keys are exactly what sections avoid.
func (c *Configuration) All() map[string]any {
	out := make(map[string]any, len(c.names))
	for _, name := range c.names {
		out[naming.ToNamespace(name)] = c.values[name].Value.Any()
	}
	return out
}

// Section returns the values whose flat names start with the words of
// name, keyed by the rest of the name in camel case. Section("upwardJs")
// maps UPWARD_JS_HOST to "host". An unmatched section yields an empty map.
func (c *Configuration) Section(name string) map[string]any {
	values := c.sectionValues(name)

	out := make(map[string]any, len(values))
	for property, v := range values {
		out[property] = v.Any()
	}
	return out
}

// Sections returns Section(name) for every name, keyed by name.
func (c *Configuration) Sections(names ...string) map[string]map[string]any {
	out := make(map[string]map[string]any, len(names))
	for _, name := range names {
		out[name] = c.Section(name)
	}
	return out
}

// IsDev reports whether NODE_ENV is "development".
func (c *Configuration) IsDev() bool {
	return c.nodeEnv == ModeDevelopment
}

// IsProd reports whether NODE_ENV is "production".
func (c *Configuration) IsProd() bool {
	return c.nodeEnv == ModeProduction
}

// Warnings returns the deprecation warnings recorded while loading.
func (c *Configuration) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

func (c *Configuration) sectionValues(name string) map[string]models.Value {
	prefix := naming.SectionWords(name)
	out := make(map[string]models.Value)

	for _, flat := range c.names {
		_, property, ok := naming.ToSection(flat, prefix)
		if !ok {
			continue
		}
		out[property] = c.values[flat].Value
	}

	if len(out) == 0 {
		c.log.Warn().Str("section", name).Msg("no variables match section")
	}
	return out
}
