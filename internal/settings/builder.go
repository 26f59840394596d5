// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type builder struct {
	layers []*Settings
	err    error
}

func newBuilder() *builder {
	return &builder{
		layers: make([]*Settings, 0, 3),
	}
}

// build merges the layers in the order they were added. A field keeps the
// first non-empty value it receives.
func (b *builder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	s := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(s, layer); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *builder) withEnv() *builder {
	envLayer := &Settings{}
	if err := parseEnv(envLayer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envLayer)
	return b
}

func (b *builder) withFlags(fs *pflag.FlagSet) *builder {
	flagLayer, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagLayer)
	return b
}

func (b *builder) withDefaults() *builder {
	b.layers = append(b.layers, Defaults())
	return b
}
