package validation_test

import (
	"testing"

	"github.com/opusregistry/catalog_backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateISRC_EmptyIsValid(t *testing.T) {
	assert.Empty(t, validation.ValidateISRC(""))
}

func TestValidateISRC_Valid(t *testing.T) {
	for _, isrc := range []string{
		"USRC17607839",
		"GBAYE6800011",
		"FRZ039800212",
		"QM6P42033616", // alphanumeric registrant
	} {
		assert.Empty(t, validation.ValidateISRC(isrc), isrc)
	}
}

// Validation is case-insensitive: a correctly shaped lowercase ISRC passes.
func TestValidateISRC_CaseInsensitive(t *testing.T) {
	assert.Empty(t, validation.ValidateISRC("usrc17607839"))
	assert.True(t, validation.IsValidISRCFormat("usrc17607839"))
	assert.True(t, validation.IsValidISRCFormat("UsRc17607839"))
}

func TestValidateISRC_Format(t *testing.T) {
	tests := []struct {
		name string
		isrc string
	}{
		{"too short", "USRC1760783"},
		{"too long", "USRC176078390"},
		{"digit country code", "U1RC17607839"},
		{"letters in designation", "USRC1760783A"},
		{"punctuation", "US-RC1760783"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateISRC(tt.isrc)
			require.Len(t, errs, 1)
			assert.Equal(t, validation.CodeInvalidISRCFormat, errs[0].Code)
		})
	}
}

func TestParseISRC_Components(t *testing.T) {
	parts, err := validation.ParseISRC("usrc17607839")
	require.NoError(t, err)
	assert.Equal(t, "US", parts.CountryCode)
	assert.Equal(t, "RC1", parts.RegistrantCode)
	assert.Equal(t, "76", parts.Year)
	assert.Equal(t, "07839", parts.Designation)
}

func TestParseISRC_Invalid(t *testing.T) {
	_, err := validation.ParseISRC("not-an-isrc")
	assert.Error(t, err)
}
