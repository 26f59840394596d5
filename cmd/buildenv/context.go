// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-buildenv/internal/config"
	"github.com/MKhiriev/go-buildenv/internal/envloader"
	"github.com/MKhiriev/go-buildenv/internal/logger"
	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/internal/settings"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("failure already reported")

// commandContext carries what every subcommand needs. It is filled once by
// the root command's PersistentPreRunE.
type commandContext struct {
	env      envloader.ProcessEnv
	settings *settings.Settings
	log      *logger.Logger
	registry *schema.Registry
}

func newCommandContext(env envloader.ProcessEnv) *commandContext {
	return &commandContext{env: env}
}

// prepare resolves the settings, the logger and the schema registry.
func (c *commandContext) prepare(cmd *cobra.Command) error {
	s, err := settings.Get(cmd.Flags())
	if err != nil {
		return err
	}
	c.settings = s

	if w := cmd.ErrOrStderr(); w == os.Stderr {
		c.log = logger.NewLogger("buildenv", s.LogLevel)
	} else {
		c.log = logger.New(w, "buildenv", s.LogLevel)
	}

	var warnings []string
	if s.SchemaFile != "" {
		c.registry, warnings, err = schema.LoadFile(s.SchemaFile)
	} else {
		c.registry, warnings, err = schema.Default()
	}
	if err != nil {
		return fmt.Errorf("error loading schema: %w", err)
	}
	for _, w := range warnings {
		c.log.Warn().Msg(w)
	}

	c.log.Debug().
		Str("dir", s.Dir).
		Str("schema", s.SchemaFile).
		Int("entries", c.registry.Len()).
		Msg("settings resolved")
	return nil
}

// loadConfig loads the project configuration of the resolved directory.
func (c *commandContext) loadConfig() (*config.Configuration, error) {
	return config.NewLoader(c.env, c.registry, c.log).Load(c.settings.Dir)
}

func (c *commandContext) jsonOutput() bool {
	return c.settings.Output == settings.OutputJSON
}
