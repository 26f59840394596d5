// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings resolves how the buildenv command itself runs: which
// project directory to load, which schema file to use, how verbose to log
// and how to print results.
//
// Settings come from three layers, merged field by field with the first
// non-empty value winning:
//  1. command-line flags that were set explicitly;
//  2. BUILDENV_* environment variables;
//  3. built-in defaults.
//
// These are the tool's own settings. They never pass through the project
// schema and are not part of the project's configuration.
package settings

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Flag names shared by the CLI and the flag layer.
const (
	FlagDir      = "dir"
	FlagSchema   = "schema"
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
)

// Settings is the resolved run configuration of the CLI.
type Settings struct {
	// Dir is the project directory holding the .env file.
	Dir string `env:"BUILDENV_DIR"`

	// SchemaFile is an optional YAML schema replacing the built-in one.
	SchemaFile string `env:"BUILDENV_SCHEMA"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"BUILDENV_LOG_LEVEL"`

	// Output is OutputTable or OutputJSON.
	Output string `env:"BUILDENV_OUTPUT"`
}

// Defaults returns the settings used when neither flags nor environment say
// otherwise.
func Defaults() *Settings {
	return &Settings{
		Dir:      ".",
		LogLevel: "warn",
		Output:   OutputTable,
	}
}

// RegisterFlags adds the settings flags to fs. Flag defaults are left empty
// so that an unset flag never shadows the environment layer.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagDir, "d", "", "project directory containing the .env file (default \".\")")
	fs.String(FlagSchema, "", "YAML schema file to use instead of the built-in one")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error (default \"warn\")")
	fs.StringP(FlagOutput, "o", "", "output format: table or json (default \"table\")")
}

// Get resolves the settings from fs, the environment and the defaults.
func Get(fs *pflag.FlagSet) (*Settings, error) {
	s, err := newBuilder().
		withFlags(fs).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error resolving settings: %w", err)
	}
	return s, nil
}
