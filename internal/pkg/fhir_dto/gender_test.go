package fhir_dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdministrativeGender_CaseInsensitive(t *testing.T) {
	testCases := []struct {
		raw      string
		expected AdministrativeGender
	}{
		{"male", GenderMale},
		{"Male", GenderMale},
		{"MALE", GenderMale},
		{"female", GenderFemale},
		{"FEMALE", GenderFemale},
		{"FeMaLe", GenderFemale},
		{"other", GenderOther},
		{"Other", GenderOther},
		{"unknown", GenderUnknown},
		{"UNKNOWN", GenderUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			gender, err := ParseAdministrativeGender(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, gender)
		})
	}
}

func TestParseAdministrativeGender_RejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "females", "m", "MALE ", "none", "man"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseAdministrativeGender(raw)
			assert.Error(t, err)
		})
	}
}

func TestAdministrativeGender_CodeIsCanonicalLowercase(t *testing.T) {
	gender, err := ParseAdministrativeGender("OTHER")
	require.NoError(t, err)
	assert.Equal(t, "other", gender.Code())

	// decode then encode always yields the canonical code
	roundTripped, err := ParseAdministrativeGender(gender.Code())
	require.NoError(t, err)
	assert.Equal(t, gender, roundTripped)
}
