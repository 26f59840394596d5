// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "single word", in: "PORT", want: true},
		{name: "several words", in: "UPWARD_JS_HOST", want: true},
		{name: "digits", in: "HTTP2_PORT", want: true},
		{name: "trailing underscore", in: "HOST_", want: true},
		{name: "lower case", in: "upward_js_host", want: false},
		{name: "mixed case", in: "Upward_JS", want: false},
		{name: "leading digit", in: "2FA_KEY", want: false},
		{name: "leading underscore", in: "_HOST", want: false},
		{name: "dash", in: "UPWARD-JS", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.in))
		})
	}
}

func TestToNamespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PORT", want: "port"},
		{in: "UPWARD_JS_HOST", want: "upwardJsHost"},
		{in: "MAGENTO_BACKEND_URL", want: "magentoBackendUrl"},
		{in: "HTTP2_PORT", want: "http2Port"},
		{in: "IMAGE_2X_WIDTH", want: "image_2xWidth"},
		{in: "A__B", want: "a_B"},
		{in: "HOST_", want: "host_"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNamespace(tt.in))
		})
	}
}

func TestToFlat(t *testing.T) {
	assert.Equal(t, "UPWARD_JS_HOST", ToFlat("upwardJsHost"))
	assert.Equal(t, "UPWARD_JS", ToFlat("upwardJs"))
	assert.Equal(t, "HOST", ToFlat("host"))
	assert.Equal(t, "IMAGE_2X_WIDTH", ToFlat("image_2xWidth"))
}

func TestSectionWords(t *testing.T) {
	assert.Equal(t, []string{"UPWARD", "JS"}, SectionWords("upwardJs"))
	assert.Equal(t, []string{"DEV", "SERVER"}, SectionWords("devServer"))
	assert.Nil(t, SectionWords(""))
}

func TestToSection(t *testing.T) {
	prefix := SectionWords("upwardJs")

	tests := []struct {
		name         string
		in           string
		wantSection  string
		wantProperty string
		wantOK       bool
	}{
		{name: "simple property", in: "UPWARD_JS_HOST", wantSection: "upwardJs", wantProperty: "host", wantOK: true},
		{name: "multi word property", in: "UPWARD_JS_UPWARD_PATH", wantSection: "upwardJs", wantProperty: "upwardPath", wantOK: true},
		{name: "no delimiter", in: "UPWARDJS_HOST", wantOK: false},
		{name: "prefix only", in: "UPWARD_JS", wantOK: false},
		{name: "partial word", in: "UPWARD_JSX_HOST", wantOK: false},
		{name: "unrelated", in: "MAGENTO_BACKEND_URL", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, property, ok := ToSection(tt.in, prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSection, section)
			assert.Equal(t, tt.wantProperty, property)
		})
	}
}

func TestToSection_EmptyPrefix(t *testing.T) {
	_, _, ok := ToSection("UPWARD_JS_HOST", nil)
	assert.False(t, ok)
}

// TestToNamespace_RoundTrip checks that every valid flat name survives the
// trip to a camel-cased key and back.
func TestToNamespace_RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("ToFlat(ToNamespace(name)) == name", prop.ForAll(
		func(name string) bool {
			return ToFlat(ToNamespace(name)) == name
		},
		gen.RegexMatch(`[A-Z][A-Z0-9_]{0,24}`).SuchThat(IsValidName),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestToNamespace_RoundTripEdgeCases(t *testing.T) {
	for _, name := range []string{"A", "A_", "A__", "A__B", "A_1", "A_1B", "A_1__B", "X9_Y_9Z_"} {
		assert.Equal(t, name, ToFlat(ToNamespace(name)), name)
	}
}
