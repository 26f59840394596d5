// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"BUILDENV_DIR", "BUILDENV_SCHEMA", "BUILDENV_LOG_LEVEL", "BUILDENV_OUTPUT"} {
		t.Setenv(name, "")
	}
}

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── Get ───────────────────────────────────────────────────────────────────────

// TestGet_Defaults verifies that with no flags and no environment the
// built-in defaults are returned.
func TestGet_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Get(flagSet(t))

	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

// TestGet_EnvOverridesDefaults verifies the environment layer.
func TestGet_EnvOverridesDefaults(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("BUILDENV_DIR", "/srv/storefront")
	t.Setenv("BUILDENV_OUTPUT", "json")

	// Act
	s, err := Get(nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/srv/storefront", s.Dir)
	assert.Equal(t, OutputJSON, s.Output)
	assert.Equal(t, "warn", s.LogLevel)
}

// TestGet_FlagsOverrideEnv verifies that explicitly set flags win over the
// environment, while unset flags leave it alone.
func TestGet_FlagsOverrideEnv(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("BUILDENV_DIR", "/from/env")
	t.Setenv("BUILDENV_LOG_LEVEL", "info")

	// Act
	s, err := Get(flagSet(t, "--dir", "/from/flag", "--schema", "schema.yaml"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", s.Dir)
	assert.Equal(t, "schema.yaml", s.SchemaFile)
	assert.Equal(t, "info", s.LogLevel)
}

func TestGet_InvalidOutput(t *testing.T) {
	clearEnv(t)

	s, err := Get(flagSet(t, "-o", "yaml"))

	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestGet_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUILDENV_LOG_LEVEL", "loud")

	s, err := Get(nil)

	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

// ── builder ───────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil settings.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newBuilder()
	b.err = assert.AnError

	s, err := b.build()

	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstLayerWins verifies the merge order of the layers.
func TestBuild_FirstLayerWins(t *testing.T) {
	b := newBuilder()
	b.layers = append(b.layers,
		&Settings{Dir: "first"},
		&Settings{Dir: "second", Output: OutputJSON},
		Defaults(),
	)

	s, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, &Settings{Dir: "first", LogLevel: "warn", Output: OutputJSON}, s)
}

func TestParseFlags_Nil(t *testing.T) {
	s, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}
