// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-buildenv/internal/envloader"
	"github.com/MKhiriev/go-buildenv/internal/logger"
	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/internal/validators"
	"github.com/MKhiriev/go-buildenv/models"
)

// Loader runs the environment → validation → facade pipeline.
type Loader struct {
	env       envloader.ProcessEnv
	registry  *schema.Registry
	validator validators.Validator
	log       *logger.Logger
}

// NewLoader returns a Loader. A nil env reads the real process
// environment, a nil registry validates nothing (every name passes through
// as a string) and a nil log discards output.
func NewLoader(env envloader.ProcessEnv, registry *schema.Registry, log *logger.Logger) *Loader {
	log = logger.OrNop(log)
	return &Loader{
		env:       env,
		registry:  registry,
		validator: validators.NewEnvValidator(log),
		log:       log,
	}
}

// Load reads dir/.env and the process environment, validates the result and
// returns the Configuration. It fails with a *ConfigurationError when the
// .env file is malformed or when any variable is invalid or missing; all
// problems are reported together.
func (l *Loader) Load(dir string) (*Configuration, error) {
	merged, err := envloader.NewLoader(l.env, l.log).Load(dir)
	if err != nil {
		if errors.Is(err, envloader.ErrMalformedFile) {
			cfgErr := &ConfigurationError{
				Records: []models.ErrorRecord{{Kind: models.MalformedFile, Name: envloader.FileName, Detail: err.Error()}},
				cause:   err,
			}
			l.log.Error().Err(err).Msg("error reading .env file")
			return nil, cfgErr
		}
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	res := l.validator.Validate(merged, l.registry)
	for _, w := range res.Warnings {
		l.log.Warn().Msg(w)
	}
	if !res.OK() {
		l.log.Error().Int("problems", len(res.Errors)).Msg("configuration is invalid")
		return nil, &ConfigurationError{Records: res.Errors}
	}

	l.log.Debug().Int("variables", len(res.Values)).Str("dir", dir).Msg("configuration loaded")
	return newConfiguration(res.Values, res.Warnings, l.log), nil
}

// Load loads the configuration of dir against the built-in schema and the
// real process environment.
func Load(dir string) (*Configuration, error) {
	registry, _, err := schema.Default()
	if err != nil {
		return nil, fmt.Errorf("error reading built-in schema: %w", err)
	}
	return NewLoader(nil, registry, nil).Load(dir)
}
