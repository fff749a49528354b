package contracts

import (
	"context"

	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"
)

// BundleAssembler turns one page of engine results into a searchset bundle
// with deterministic self/next links.
type BundleAssembler interface {
	Assemble(ctx context.Context, kind string, page *fhir_dto.ResultPage, criteria *queries.SearchCriteria, request *requests.SearchPatients, selfPath string) (*fhir_dto.Bundle, error)
}
