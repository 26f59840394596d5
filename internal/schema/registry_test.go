// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-buildenv/models"
)

func strPtr(s string) *string { return &s }

func TestNew_PreservesOrderAndLookup(t *testing.T) {
	// Arrange
	entries := []models.SchemaEntry{
		{Name: "B_VAR", Type: models.VarType{Kind: models.TypeString}, Status: models.Active()},
		{Name: "A_VAR", Type: models.VarType{Kind: models.TypePort}, Default: strPtr("80"), Status: models.Active()},
	}

	// Act
	r, warnings, err := New(entries)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "B_VAR", r.Entries()[0].Name)
	assert.Equal(t, "A_VAR", r.Entries()[1].Name)

	e, ok := r.Lookup("A_VAR")
	require.True(t, ok)
	assert.Equal(t, models.TypePort, e.Type.Kind)
	assert.Equal(t, "80", *e.Default)

	_, ok = r.Lookup("UNKNOWN")
	assert.False(t, ok)
}

func TestNew_CollectsAllAuthoringErrors(t *testing.T) {
	entries := []models.SchemaEntry{
		{Name: "lower", Type: models.VarType{Kind: models.TypeString}},
		{Name: "DUP", Type: models.VarType{Kind: models.TypeString}},
		{Name: "DUP", Type: models.VarType{Kind: models.TypeString}},
		{Name: "MODE", Type: models.VarType{Kind: models.TypeEnum}},
		{Name: "SELF", Type: models.VarType{Kind: models.TypeString}, Status: models.Deprecated("SELF", "")},
	}

	r, _, err := New(entries)

	assert.Nil(t, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Contains(t, err.Error(), "lower")
	assert.Contains(t, err.Error(), "MODE")
	assert.Contains(t, err.Error(), "SELF")
}

func TestNew_UnknownReplacementIsWarning(t *testing.T) {
	entries := []models.SchemaEntry{
		{Name: "OLD_HOST", Type: models.VarType{Kind: models.TypeString}, Status: models.Deprecated("NEW_HOST", "")},
	}

	r, warnings, err := New(entries)

	require.NoError(t, err)
	require.NotNil(t, r)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "NEW_HOST")
}

func TestLookup_NilRegistry(t *testing.T) {
	var r *Registry
	_, ok := r.Lookup("ANY")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
	assert.Nil(t, r.Entries())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	r, _, err := New([]models.SchemaEntry{{Name: "A", Type: models.VarType{Kind: models.TypeString}}})
	require.NoError(t, err)

	entries := r.Entries()
	entries[0].Name = "CHANGED"

	e, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "A", e.Name)
}

func TestParse_Definitions(t *testing.T) {
	// Arrange
	doc := `
- name: NODE_ENV
  type: enum
  values: [development, production]
  default: development
- name: OLD_HOST
  type: string
  deprecated:
    replacement: NEW_HOST
    reason: renamed
- name: NEW_HOST
  type: url
  required: true
  description: Where to go.
  example: https://example.test/
`

	// Act
	r, warnings, err := Parse(strings.NewReader(doc))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, r.Len())

	mode, ok := r.Lookup("NODE_ENV")
	require.True(t, ok)
	assert.Equal(t, models.TypeEnum, mode.Type.Kind)
	assert.Equal(t, []string{"development", "production"}, mode.Type.Values)
	assert.Equal(t, "development", *mode.Default)

	old, ok := r.Lookup("OLD_HOST")
	require.True(t, ok)
	assert.True(t, old.Status.IsDeprecated())
	assert.Equal(t, "NEW_HOST", old.Status.Replacement)
	assert.Equal(t, "renamed", old.Status.Reason)

	host, ok := r.Lookup("NEW_HOST")
	require.True(t, ok)
	assert.True(t, host.Required)
	assert.False(t, host.HasDefault())
	assert.Equal(t, "https://example.test/", host.Example)
}

func TestParse_UnknownType(t *testing.T) {
	_, _, err := Parse(strings.NewReader("- name: A\n  type: duration\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestParse_UnknownField(t *testing.T) {
	_, _, err := Parse(strings.NewReader("- name: A\n  type: string\n  secret: true\n"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	r, warnings, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Zero(t, r.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: A\n  type: bool\n"), 0o644))

	r, _, err := LoadFile(path)
	require.NoError(t, err)
	e, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, models.TypeBool, e.Type.Kind)
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDefault_BuiltinTable makes sure the shipped definitions parse and
// every deprecation points at a declared entry.
func TestDefault_BuiltinTable(t *testing.T) {
	r, warnings, err := Default()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	mode, ok := r.Lookup("NODE_ENV")
	require.True(t, ok)
	assert.True(t, mode.Type.Allows("development"))
	assert.True(t, mode.Type.Allows("production"))

	backend, ok := r.Lookup("MAGENTO_BACKEND_URL")
	require.True(t, ok)
	assert.True(t, backend.Required)

	again, _, _ := Default()
	assert.Same(t, r, again)
}
