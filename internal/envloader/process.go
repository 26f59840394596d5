// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envloader

//go:generate mockgen -source=process.go -destination=../mock/process_env_mock.go -package=mock

import "os"

// ProcessEnv is the process-wide environment store. The loader only reads
// it, except for the one-time fill of names resolved from the .env file.
type ProcessEnv interface {
	// Environ returns all variables as "NAME=value" strings.
	Environ() []string

	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)

	// Setenv sets key to value.
	Setenv(key, value string) error
}

// OSProcessEnv is the ProcessEnv backed by package os.
type OSProcessEnv struct{}

// Environ implements ProcessEnv.
func (OSProcessEnv) Environ() []string {
	return os.Environ()
}

// LookupEnv implements ProcessEnv.
func (OSProcessEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv implements ProcessEnv.
func (OSProcessEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}
