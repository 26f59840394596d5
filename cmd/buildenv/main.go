// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command buildenv loads, validates and inspects the build environment of a
// storefront project.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-buildenv/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := newRootCommand(nil, info)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
