// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills s from the BUILDENV_* variables declared in the `env` tags
// of [Settings].
func parseEnv(s *Settings) error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}
	return nil
}
