// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged settings before they are used.
func (s *Settings) validate() error {
	switch s.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, s.Output)
	}

	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}

	return nil
}
