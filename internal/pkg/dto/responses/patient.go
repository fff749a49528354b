package responses

import "time"

// PatientEnvelope is a normalized resource document plus the version metadata
// the transport layer turns into cache-validator headers.
type PatientEnvelope struct {
	ID          string
	VersionID   string
	LastUpdated time.Time
	Body        []byte
}
