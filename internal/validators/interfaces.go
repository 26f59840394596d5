// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-buildenv/internal/schema"
	"github.com/MKhiriev/go-buildenv/models"
)

// Validator turns a merged environment into validated values.
//
// Implementations must not stop at the first problem: every error found is
// returned in the Result.
type Validator interface {
	Validate(merged models.MergedEnvironment, registry *schema.Registry) Result
}

var _ Validator = (*EnvValidator)(nil)
