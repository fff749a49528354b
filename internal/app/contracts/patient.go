package contracts

import (
	"context"

	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/dto/responses"
	"patient-registry-service/internal/pkg/fhir_dto"

	"github.com/google/uuid"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, document []byte) (*responses.PatientEnvelope, error)
	FindPatientByID(ctx context.Context, patientID uuid.UUID) (*responses.PatientEnvelope, error)
	SearchPatients(ctx context.Context, request *requests.SearchPatients) (*fhir_dto.Bundle, error)
}
