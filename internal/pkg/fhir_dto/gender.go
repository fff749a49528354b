package fhir_dto

import (
	"fmt"
	"strings"
)

// AdministrativeGender is the closed administrative gender value set.
// Decoding is strict and must be invoked explicitly at every boundary that
// accepts a raw category value; there is no implicit unmarshalling fallback.
type AdministrativeGender string

const (
	GenderMale    AdministrativeGender = "male"
	GenderFemale  AdministrativeGender = "female"
	GenderOther   AdministrativeGender = "other"
	GenderUnknown AdministrativeGender = "unknown"
)

// ParseAdministrativeGender decodes a raw wire value case-insensitively into
// the closed set. Any other non-empty value is an error the caller must
// surface as a client error.
func ParseAdministrativeGender(raw string) (AdministrativeGender, error) {
	switch strings.ToLower(raw) {
	case string(GenderMale):
		return GenderMale, nil
	case string(GenderFemale):
		return GenderFemale, nil
	case string(GenderOther):
		return GenderOther, nil
	case string(GenderUnknown):
		return GenderUnknown, nil
	}
	return "", fmt.Errorf("invalid gender %q (allowed: male|female|other|unknown)", raw)
}

// Code returns the canonical lowercase wire code.
func (g AdministrativeGender) Code() string {
	return string(g)
}
