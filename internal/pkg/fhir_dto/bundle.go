package fhir_dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Type         string        `json:"type"`
	Total        int           `json:"total"`
	Entry        []BundleEntry `json:"entry"`
	Link         []BundleLink  `json:"link"`
}

type BundleEntry struct {
	Resource json.RawMessage `json:"resource"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

// ResultPage is one page of engine search results: the ordered ids of the
// page plus the full match count, which is independent of the page length.
type ResultPage struct {
	IDs   []uuid.UUID
	Total int
}
