// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envloader collects raw variables from the process environment and
// the project's .env file and merges them by precedence.
//
// Precedence, highest first:
//  1. variables already set in the process environment;
//  2. variables from <dir>/.env, used only for names the process lacks.
//
// Schema defaults are not applied here; see package validators.
//
// Names outside the strict UPPER_SNAKE convention are dropped from both
// sources without a warning.
//
// Side effect: every name taken from the .env file is written into the
// process environment once, by fillProcessEnv, so code reading the
// process store directly sees the same values.
package envloader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-buildenv/internal/logger"
	"github.com/MKhiriev/go-buildenv/internal/naming"
	"github.com/MKhiriev/go-buildenv/models"
)

// Loader merges the process environment with a project .env file.
type Loader struct {
	env ProcessEnv
	log *logger.Logger
}

// NewLoader returns a Loader reading from env. A nil env means the real
// process environment; a nil log discards output.
func NewLoader(env ProcessEnv, log *logger.Logger) *Loader {
	if env == nil {
		env = OSProcessEnv{}
	}
	return &Loader{
		env: env,
		log: logger.OrNop(log).GetChildLogger("envloader"),
	}
}

// Load reads the process environment and <dir>/.env and returns the merged,
// precedence-resolved variables.
func (l *Loader) Load(dir string) (models.MergedEnvironment, error) {
	process := l.snapshotProcess()

	fileVars, present, err := readEnvFile(dir)
	if err != nil {
		return models.MergedEnvironment{}, err
	}
	if !present {
		l.log.Info().Str("dir", dir).Msg("no .env file found, using process environment only")
	}

	pending := make([]models.RawVariable, 0, len(fileVars))
	for _, name := range sortedKeys(fileVars) {
		if !naming.IsValidName(name) {
			continue
		}
		if _, ok := process[name]; ok {
			continue
		}
		pending = append(pending, models.RawVariable{Name: name, Value: fileVars[name], Source: models.SourceFile})
	}

	filled, err := fillProcessEnv(l.env, pending)
	if err != nil {
		return models.MergedEnvironment{}, err
	}

	vars := make([]models.RawVariable, 0, len(process)+len(filled))
	for _, v := range process {
		vars = append(vars, v)
	}
	for _, v := range filled {
		if v.Source == models.SourceFile {
			l.log.Debug().Str("name", v.Name).Msg("filled process environment from .env")
		}
		vars = append(vars, v)
	}

	return models.NewMergedEnvironment(vars...), nil
}

// snapshotProcess captures the valid names currently set in the process.
func (l *Loader) snapshotProcess() map[string]models.RawVariable {
	environ := l.env.Environ()
	out := make(map[string]models.RawVariable, len(environ))

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !naming.IsValidName(name) {
			continue
		}
		if _, dup := out[name]; dup {
			continue
		}
		out[name] = models.RawVariable{Name: name, Value: value, Source: models.SourceProcess}
	}

	return out
}

// fillProcessEnv writes every file-sourced variable into env unless the
// name has been set in the meantime, in which case the process value is
// kept and returned instead. It is the only place the loader mutates the
// process environment.
func fillProcessEnv(env ProcessEnv, vars []models.RawVariable) ([]models.RawVariable, error) {
	out := make([]models.RawVariable, 0, len(vars))

	for _, v := range vars {
		if current, ok := env.LookupEnv(v.Name); ok {
			out = append(out, models.RawVariable{Name: v.Name, Value: current, Source: models.SourceProcess})
			continue
		}
		if err := env.Setenv(v.Name, v.Value); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFillProcessEnv, v.Name, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
