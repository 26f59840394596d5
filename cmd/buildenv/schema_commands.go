// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-buildenv/internal/config"
	"github.com/MKhiriev/go-buildenv/internal/envloader"
	"github.com/MKhiriev/go-buildenv/models"
)

type schemaRow struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Default     *string `json:"default"`
	Required    bool    `json:"required"`
	Deprecated  bool    `json:"deprecated"`
	Replacement string  `json:"replacement,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Description string  `json:"description,omitempty"`
}

func newSchemaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the known variables, their types, defaults and deprecations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := ctx.registry.Entries()

			if ctx.jsonOutput() {
				out := make([]schemaRow, 0, len(entries))
				for _, e := range entries {
					out = append(out, toSchemaRow(e))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				def := "-"
				if e.HasDefault() {
					def = formatValue(*e.Default)
				}
				required := ""
				if e.Required {
					required = "yes"
				}
				rows = append(rows, []string{e.Name, e.Type.String(), def, required, statusLabel(e.Status)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Type", "Default", "Required", "Status"}, rows, nil))
			return nil
		},
	}
}

func toSchemaRow(e models.SchemaEntry) schemaRow {
	return schemaRow{
		Name:        e.Name,
		Type:        e.Type.String(),
		Default:     e.Default,
		Required:    e.Required,
		Deprecated:  e.Status.IsDeprecated(),
		Replacement: e.Status.Replacement,
		Reason:      e.Status.Reason,
		Description: e.Description,
	}
}

func statusLabel(s models.Status) string {
	switch {
	case !s.IsDeprecated():
		return "active"
	case s.Replacement != "":
		return "deprecated, use " + s.Replacement
	default:
		return "deprecated"
	}
}

func newInitCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample .env file into the project directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := filepath.Join(ctx.settings.Dir, envloader.FileName)

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check %s: %w", target, err)
				}
			}

			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			defer f.Close()

			if err := config.WriteSample(f, ctx.registry); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", target, err)
			}

			ctx.log.Info().Str("path", target).Msg("sample .env written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample environment to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing .env file")
	return cmd
}
