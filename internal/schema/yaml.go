// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-buildenv/models"
)

//go:embed definitions.yaml
var builtinDefinitions string

// definition is one record of the YAML definitions table.
type definition struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	Values      []string     `yaml:"values"`
	Default     *string      `yaml:"default"`
	Required    bool         `yaml:"required"`
	Description string       `yaml:"description"`
	Example     string       `yaml:"example"`
	Deprecated  *deprecation `yaml:"deprecated"`
}

type deprecation struct {
	Replacement string `yaml:"replacement"`
	Reason      string `yaml:"reason"`
}

var typeKinds = map[string]models.TypeKind{
	"string": models.TypeString,
	"bool":   models.TypeBool,
	"number": models.TypeNumber,
	"url":    models.TypeURL,
	"port":   models.TypePort,
	"enum":   models.TypeEnum,
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultWarnings []string
	defaultErr      error
)

// Default returns the registry built from the definitions shipped with the
// tool. The table is parsed on first use and shared afterwards.
func Default() (*Registry, []string, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultWarnings, defaultErr = Parse(strings.NewReader(builtinDefinitions))
	})
	return defaultRegistry, defaultWarnings, defaultErr
}

// LoadFile reads a definitions table from the YAML file at path.
func LoadFile(path string) (*Registry, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	r, warnings, err := Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return r, warnings, nil
}

// Parse decodes a YAML sequence of definitions and builds a Registry from
// it. Unknown keys are rejected. An empty document yields an empty
// registry.
func Parse(r io.Reader) (*Registry, []string, error) {
	var defs []definition

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("decode schema: %w", err)
	}

	entries := make([]models.SchemaEntry, 0, len(defs))
	var errs error
	for _, d := range defs {
		entry, err := d.toEntry()
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		entries = append(entries, entry)
	}
	if errs != nil {
		return nil, nil, errs
	}

	return New(entries)
}

func (d definition) toEntry() (models.SchemaEntry, error) {
	kind, ok := typeKinds[strings.ToLower(strings.TrimSpace(d.Type))]
	if !ok {
		return models.SchemaEntry{}, fmt.Errorf("%w: %s has unknown type %q", ErrInvalidEntry, d.Name, d.Type)
	}

	entry := models.SchemaEntry{
		Name:        d.Name,
		Type:        models.VarType{Kind: kind, Values: d.Values},
		Default:     d.Default,
		Required:    d.Required,
		Status:      models.Active(),
		Description: d.Description,
		Example:     d.Example,
	}
	if d.Deprecated != nil {
		entry.Status = models.Deprecated(d.Deprecated.Replacement, d.Deprecated.Reason)
	}

	return entry, nil
}
