package contracts

import (
	"context"

	"patient-registry-service/internal/pkg/fhir_dto"
)

// ResourceValidator checks a raw resource document for structural and value
// conformance. An empty issue slice means the document is acceptable; a
// non-nil error means the validator itself failed.
type ResourceValidator interface {
	Validate(ctx context.Context, document []byte) ([]fhir_dto.Issue, error)
}
