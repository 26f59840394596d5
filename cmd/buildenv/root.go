// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-buildenv/internal/envloader"
	"github.com/MKhiriev/go-buildenv/internal/settings"
	"github.com/MKhiriev/go-buildenv/models"
)

// newRootCommand builds the command tree. A nil env uses the real process
// environment.
func newRootCommand(env envloader.ProcessEnv, info models.AppBuildInfo) *cobra.Command {
	ctx := newCommandContext(env)

	rootCmd := &cobra.Command{
		Use:           "buildenv",
		Short:         "Inspect and validate the build environment of a storefront project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipPrepare"] == "true" {
				return nil
			}
			return ctx.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	settings.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAllCommand(ctx))
	rootCmd.AddCommand(newSectionCommand(ctx))
	rootCmd.AddCommand(newModeCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newSchemaCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newDevServerCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
