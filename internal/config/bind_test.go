// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-buildenv/models"
)

type devServer struct {
	Host                 string `env:"HOST" envDefault:"0.0.0.0"`
	Port                 int    `env:"PORT"`
	ServiceWorkerEnabled bool   `env:"SERVICE_WORKER_ENABLED"`
}

func TestBindSection(t *testing.T) {
	// Arrange
	values := stringValues("DEV_SERVER_HOST", "localhost")
	values["DEV_SERVER_PORT"] = models.ValidatedValue{Name: "DEV_SERVER_PORT", Value: models.NumberValue(8080)}
	values["DEV_SERVER_SERVICE_WORKER_ENABLED"] = models.ValidatedValue{Name: "DEV_SERVER_SERVICE_WORKER_ENABLED", Value: models.BoolValue(true)}
	cfg := newConfiguration(values, nil, nil)

	// Act
	var got devServer
	err := BindSection(cfg, "devServer", &got)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, devServer{Host: "localhost", Port: 8080, ServiceWorkerEnabled: true}, got)
}

func TestBindSection_EmptySectionUsesTagDefaults(t *testing.T) {
	t.Setenv("HOST", "from-process")
	cfg := newConfiguration(stringValues(), nil, nil)

	var got devServer
	err := BindSection(cfg, "devServer", &got)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", got.Host)
}

func TestBindSection_DecodeError(t *testing.T) {
	cfg := newConfiguration(stringValues("DEV_SERVER_PORT", "eighty"), nil, nil)

	var got devServer
	err := BindSection(cfg, "devServer", &got)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "devServer")
}
