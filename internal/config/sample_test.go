// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-buildenv/internal/envloader"
	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/models"
)

func TestWriteSample(t *testing.T) {
	// Arrange
	required := entry("MAGENTO_BACKEND_URL", models.TypeURL)
	required.Required = true
	required.Example = "https://backend.local.test/"
	required.Description = "URL of the backend."

	port := entry("DEV_SERVER_PORT", models.TypePort)
	port.Default = strPtr("0")

	optional := entry("DEV_SERVER_HOST", models.TypeString)
	optional.Example = "localhost"

	old := entry("MAGENTO_BACKEND_DOMAIN", models.TypeURL)
	old.Status = models.Deprecated("MAGENTO_BACKEND_URL", "")

	registry := newRegistry(t, required, port, optional, old)

	// Act
	var buf bytes.Buffer
	err := WriteSample(&buf, registry)

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "# URL of the backend.\n# type: url, example: https://backend.local.test/, required\n")
	assert.Contains(t, out, "# DEV_SERVER_HOST=")
	assert.NotContains(t, out, "MAGENTO_BACKEND_DOMAIN")

	parsed, err := godotenv.Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MAGENTO_BACKEND_URL": "https://backend.local.test/",
		"DEV_SERVER_PORT":     "0",
	}, parsed)
}

// TestWriteSample_BuiltinLoads verifies that the sample of the built-in
// schema is itself a valid project .env file.
func TestWriteSample_BuiltinLoads(t *testing.T) {
	// Arrange
	registry, _, err := schema.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf, registry))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, envloader.FileName), buf.Bytes(), 0o644))

	// Act
	cfg, err := NewLoader(stubEnv(t), registry, nil).Load(dir)

	// Assert
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Empty(t, cfg.Warnings())
}
