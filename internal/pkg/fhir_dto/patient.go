package fhir_dto

// Patient covers the declared fields this service interprets. The resource
// payload itself travels through the system as raw JSON; this struct exists
// for call sites that need typed access after an explicit unmarshal.
type Patient struct {
	ID           string      `json:"id,omitempty"`
	ResourceType string      `json:"resourceType,omitempty"`
	Active       bool        `json:"active,omitempty"`
	Name         []HumanName `json:"name,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	BirthDate    string      `json:"birthDate,omitempty"`
	Meta         *Meta       `json:"meta,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
}

type Meta struct {
	VersionID   string `json:"versionId,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}
