// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-buildenv/internal/config"
)

func newAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Print every variable under its camel-cased name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			all := cfg.All()
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), all)
			}

			keys := sortedKeys(all)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, formatValue(all[k])})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows, nil))
			return nil
		},
	}
}

func newSectionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "section NAME...",
		Short: "Print the variables of one or more sections",
		Long: `Print the variables of one or more sections.

A section is named in camel case after the leading words of the flat
variable names it groups: "upwardJs" selects UPWARD_JS_HOST as "host".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				section := cfg.Section(args[0])
				if ctx.jsonOutput() {
					return writeJSON(cmd.OutOrStdout(), section)
				}
				rows := make([][]string, 0, len(section))
				for _, k := range sortedKeys(section) {
					rows = append(rows, []string{k, formatValue(section[k])})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Property", "Value"}, rows, nil))
				return nil
			}

			sections := cfg.Sections(args...)
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), sections)
			}
			var rows [][]string
			for _, name := range args {
				section := sections[name]
				for _, k := range sortedKeys(section) {
					rows = append(rows, []string{name, k, formatValue(section[k])})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Section", "Property", "Value"}, rows, nil))
			return nil
		},
	}
}

type modeReport struct {
	NodeEnv     any  `json:"nodeEnv"`
	Development bool `json:"development"`
	Production  bool `json:"production"`
}

func newModeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the build mode selected by " + config.ModeVariable,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			report := modeReport{
				NodeEnv:     cfg.All()["nodeEnv"],
				Development: cfg.IsDev(),
				Production:  cfg.IsProd(),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			rows := [][]string{
				{config.ModeVariable, formatValue(report.NodeEnv)},
				{"development", fmt.Sprint(report.Development)},
				{"production", fmt.Sprint(report.Production)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Value"}, rows, nil))
			return nil
		},
	}
}

type problem struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Expected string `json:"expected,omitempty"`
	Raw      string `json:"raw,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

type checkReport struct {
	Valid    bool      `json:"valid"`
	Warnings []string  `json:"warnings"`
	Problems []problem `json:"problems"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the project environment and report every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := checkReport{Warnings: []string{}, Problems: []problem{}}

			cfg, err := ctx.loadConfig()
			var cfgErr *config.ConfigurationError
			switch {
			case errors.As(err, &cfgErr):
				for _, r := range cfgErr.Records {
					report.Problems = append(report.Problems, problem{
						Kind:     r.Kind.String(),
						Name:     r.Name,
						Expected: r.Expected,
						Raw:      r.Raw,
						Detail:   r.Detail,
					})
				}
			case err != nil:
				return err
			default:
				report.Valid = true
				report.Warnings = cfg.Warnings()
			}

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				printCheckReport(cmd, report)
			}

			if !report.Valid {
				return errReported
			}
			return nil
		},
	}
}

func printCheckReport(cmd *cobra.Command, report checkReport) {
	out := cmd.OutOrStdout()
	if report.Valid {
		fmt.Fprintln(out, "Configuration valid")
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return
	}

	rows := make([][]string, 0, len(report.Problems))
	for _, p := range report.Problems {
		detail := p.Detail
		if p.Expected != "" {
			detail = fmt.Sprintf("expected %s, got %q", p.Expected, p.Raw)
		}
		rows = append(rows, []string{p.Kind, p.Name, detail})
	}
	fmt.Fprintln(out, renderTable([]string{"Problem", "Name", "Detail"}, rows, nil))
	fmt.Fprintf(out, "Configuration invalid: %d problem(s)\n", len(report.Problems))
}

// DevServer is the devServer section as the development server reads it.
type DevServer struct {
	Host                 string `env:"HOST" envDefault:"localhost" json:"host"`
	Port                 int    `env:"PORT" json:"port"`
	ServiceWorkerEnabled bool   `env:"SERVICE_WORKER_ENABLED" json:"serviceWorkerEnabled"`
}

func newDevServerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dev-server",
		Short: "Print the development server settings decoded from the devServer section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			var ds DevServer
			if err := config.BindSection(cfg, "devServer", &ds); err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), ds)
			}

			rows := [][]string{
				{"host", ds.Host},
				{"port", fmt.Sprint(ds.Port)},
				{"serviceWorkerEnabled", fmt.Sprint(ds.ServiceWorkerEnabled)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
