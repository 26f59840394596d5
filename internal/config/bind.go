// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-buildenv/internal/naming"
)

// BindSection decodes one section of cfg into target, a pointer to a struct
// whose fields carry caarlos0/env tags named after the property in flat
// form:
//
//	type DevServer struct {
//		Host string `env:"HOST"`
//		Port int    `env:"PORT" envDefault:"8080"`
//	}
//	var ds DevServer
//	err := config.BindSection(cfg, "devServer", &ds) // DEV_SERVER_HOST -> Host
//
// Only the section's values are visible to the decoder; the process
// environment is not consulted.
func BindSection(cfg *Configuration, section string, target any) error {
	values := cfg.sectionValues(section)

	environment := make(map[string]string, len(values))
	for property, v := range values {
		environment[naming.ToFlat(property)] = v.String()
	}

	if err := env.ParseWithOptions(target, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error binding section %s: %w", section, err)
	}
	return nil
}
