// Package envelope normalizes the version metadata block of a resource
// document. It works directly on the raw JSON so the rest of the payload
// passes through untouched; synthesized values are presentation-only and are
// never written back to the store.
package envelope

import (
	"fmt"
	"net/http"
	"time"

	"github.com/buger/jsonparser"
)

const initialVersionID = "1"

var nowFunc = time.Now

// Normalize is idempotent. A missing or null meta.versionId becomes "1" and a
// missing or null meta.lastUpdated becomes the current UTC instant. Existing
// non-null values always win.
func Normalize(document []byte) ([]byte, error) {
	normalized := document

	if !hasValue(normalized, "meta", "versionId") {
		var err error
		normalized, err = jsonparser.Set(normalized, []byte(fmt.Sprintf("%q", initialVersionID)), "meta", "versionId")
		if err != nil {
			return nil, fmt.Errorf("set meta.versionId: %w", err)
		}
	}

	if !hasValue(normalized, "meta", "lastUpdated") {
		instant := nowFunc().UTC().Format(time.RFC3339)
		var err error
		normalized, err = jsonparser.Set(normalized, []byte(fmt.Sprintf("%q", instant)), "meta", "lastUpdated")
		if err != nil {
			return nil, fmt.Errorf("set meta.lastUpdated: %w", err)
		}
	}

	return normalized, nil
}

// ResourceType returns the payload's declared resource type tag, or an empty
// string when the tag is absent.
func ResourceType(document []byte) string {
	resourceType, err := jsonparser.GetString(document, "resourceType")
	if err != nil {
		return ""
	}
	return resourceType
}

// VersionID returns meta.versionId, empty when absent.
func VersionID(document []byte) string {
	versionID, err := jsonparser.GetString(document, "meta", "versionId")
	if err != nil {
		return ""
	}
	return versionID
}

// LastUpdated returns meta.lastUpdated as a parsed instant.
func LastUpdated(document []byte) (time.Time, bool) {
	raw, err := jsonparser.GetString(document, "meta", "lastUpdated")
	if err != nil {
		return time.Time{}, false
	}
	instant, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return instant, true
}

// ETag formats a version id as a weak validator, e.g. W/"1".
func ETag(versionID string) string {
	return fmt.Sprintf("W/%q", versionID)
}

// LastModifiedHeader formats an instant for the Last-Modified header.
func LastModifiedHeader(instant time.Time) string {
	return instant.UTC().Format(http.TimeFormat)
}

func hasValue(document []byte, keys ...string) bool {
	_, dataType, _, err := jsonparser.Get(document, keys...)
	if err != nil {
		return false
	}
	return dataType != jsonparser.Null && dataType != jsonparser.NotExist
}
