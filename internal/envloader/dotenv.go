// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileName is the name of the env file looked up in the project directory.
const FileName = ".env"

// readEnvFile parses <dir>/.env. A missing file is not an error and is
// reported with present == false. Any parse failure aborts with
// ErrMalformedFile: a broken line is never skipped silently.
func readEnvFile(dir string) (vars map[string]string, present bool, err error) {
	path := filepath.Join(dir, FileName)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	vars, err = godotenv.Parse(f)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: %w", ErrMalformedFile, path, err)
	}

	return vars, true, nil
}
