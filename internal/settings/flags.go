// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parseFlags returns the layer of flags that were set explicitly on fs.
// A nil fs yields an empty layer.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	s := &Settings{}
	if fs == nil {
		return s, nil
	}

	fields := map[string]*string{
		FlagDir:      &s.Dir,
		FlagSchema:   &s.SchemaFile,
		FlagLogLevel: &s.LogLevel,
		FlagOutput:   &s.Output,
	}
	for name, dst := range fields {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	return s, nil
}
