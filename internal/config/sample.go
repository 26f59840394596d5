// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/models"
)

const sampleHeader = `# Build environment for this project.
#
# Values set in the process environment take precedence over this file.
# Lines starting with "#" are ignored; uncomment a line to set it.
`

// WriteSample writes a commented .env template for every active entry of
// registry. Deprecated entries are left out.
//
// An entry with a default is written with that value. A required entry
// without a default is written with its example so the file loads as-is.
// Everything else is written as a commented-out line.
func WriteSample(w io.Writer, registry *schema.Registry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(sampleHeader); err != nil {
		return fmt.Errorf("error writing sample header: %w", err)
	}

	for _, e := range registry.Entries() {
		if e.Status.IsDeprecated() {
			continue
		}
		if err := writeSampleEntry(bw, e); err != nil {
			return fmt.Errorf("error writing sample entry %s: %w", e.Name, err)
		}
	}

	return bw.Flush()
}

func writeSampleEntry(w *bufio.Writer, e models.SchemaEntry) error {
	var b strings.Builder

	b.WriteString("\n")
	if e.Description != "" {
		for _, line := range strings.Split(strings.TrimSpace(e.Description), "\n") {
			b.WriteString("# ")
			b.WriteString(strings.TrimSpace(line))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "# type: %s", e.Type)
	if e.Example != "" {
		fmt.Fprintf(&b, ", example: %s", e.Example)
	}
	if e.Required {
		b.WriteString(", required")
	}
	b.WriteString("\n")

	var (
		value     string
		commented bool
	)
	switch {
	case e.HasDefault():
		value = *e.Default
	case e.Required:
		value = e.Example
	default:
		value = e.Example
		commented = true
	}

	line, err := godotenv.Marshal(map[string]string{e.Name: value})
	if err != nil {
		return err
	}
	if commented {
		b.WriteString("# ")
	}
	b.WriteString(line)
	b.WriteString("\n")

	_, err = w.WriteString(b.String())
	return err
}
