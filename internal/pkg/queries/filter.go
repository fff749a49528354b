// Package queries compiles validated search criteria into the canonical
// filter document the document engine consumes.
package queries

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/fhir_dto"
)

var dateShapeRegex = regexp.MustCompile(constvars.RegexDateYYYYMMDD)

// ValidateDateShape accepts exactly YYYY-MM-DD. Other separators or
// precisions are rejected even when they denote valid ISO dates; validation
// happens before criteria construction, the compiler never re-validates.
func ValidateDateShape(raw string) bool {
	return dateShapeRegex.MatchString(raw)
}

// SearchCriteria holds already-validated, possibly-partial search input.
// Invalid raw values must never reach this type.
type SearchCriteria struct {
	Name          *string
	Category      *fhir_dto.AdministrativeGender
	BirthdateFrom *string
	BirthdateTo   *string
	PageSize      int
	PageOffset    int
}

// EffectivePageSize clamps the requested page size to [1, 100].
func (c *SearchCriteria) EffectivePageSize() int {
	if c.PageSize < constvars.SearchPageSizeMin {
		return constvars.SearchPageSizeMin
	}
	if c.PageSize > constvars.SearchPageSizeMax {
		return constvars.SearchPageSizeMax
	}
	return c.PageSize
}

// EffectivePageOffset clamps the requested offset to be non-negative.
func (c *SearchCriteria) EffectivePageOffset() int {
	if c.PageOffset < constvars.SearchPageOffsetMin {
		return constvars.SearchPageOffsetMin
	}
	return c.PageOffset
}

// Compile builds the canonical filter document. Keys appear only for supplied
// criteria, in criteria definition order, with the page hints always last.
// The engine's filter parser relies on type-tagged literals: numbers and
// booleans are serialized unquoted, everything else as a quoted string.
func Compile(criteria *SearchCriteria) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	addField := func(key string, value interface{}) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		buf.WriteString(key)
		buf.WriteString(`":`)
		switch v := value.(type) {
		case int:
			buf.WriteString(strconv.Itoa(v))
		case bool:
			buf.WriteString(strconv.FormatBool(v))
		case string:
			buf.WriteString(strconv.Quote(v))
		}
	}

	if criteria.Name != nil {
		addField(constvars.FilterKeyName, strings.ToLower(*criteria.Name))
	}
	if criteria.Category != nil {
		addField(constvars.FilterKeyCategory, criteria.Category.Code())
	}
	if criteria.BirthdateFrom != nil {
		addField(constvars.FilterKeyBirthdateFrom, *criteria.BirthdateFrom)
	}
	if criteria.BirthdateTo != nil {
		addField(constvars.FilterKeyBirthdateTo, *criteria.BirthdateTo)
	}

	addField(constvars.FilterKeyPageSize, criteria.EffectivePageSize())
	addField(constvars.FilterKeyPageOffset, criteria.EffectivePageOffset())

	buf.WriteByte('}')
	return buf.Bytes()
}
