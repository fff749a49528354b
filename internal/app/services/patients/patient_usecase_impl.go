package patients

import (
	"context"
	"fmt"

	"patient-registry-service/internal/app/config"
	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/dto/responses"
	"patient-registry-service/internal/pkg/envelope"
	"patient-registry-service/internal/pkg/exceptions"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"
	"patient-registry-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	Engine          contracts.DocumentEngine
	Validator       contracts.ResourceValidator
	BundleAssembler contracts.BundleAssembler
	EventPublisher  contracts.ResourceEventPublisher
	ArchiveService  contracts.PayloadArchiveService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewPatientUsecase(
	documentEngine contracts.DocumentEngine,
	resourceValidator contracts.ResourceValidator,
	bundleAssembler contracts.BundleAssembler,
	eventPublisher contracts.ResourceEventPublisher,
	archiveService contracts.PayloadArchiveService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		Engine:          documentEngine,
		Validator:       resourceValidator,
		BundleAssembler: bundleAssembler,
		EventPublisher:  eventPublisher,
		ArchiveService:  archiveService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// CreatePatient validates and stores a patient document, then re-fetches the
// stored form so the response reflects exactly what the engine persisted,
// normalized for presentation. Event publishing and archival run after the
// store and never fail the request.
func (uc *patientUsecase) CreatePatient(ctx context.Context, document []byte) (*responses.PatientEnvelope, error) {
	if kind := envelope.ResourceType(document); kind != constvars.ResourcePatient {
		return nil, exceptions.ErrResourceTypeMismatch(constvars.ResourcePatient)
	}

	issues, err := uc.Validator.Validate(ctx, document)
	if err != nil {
		return nil, err
	}
	errorIssues := make([]fhir_dto.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsError() {
			errorIssues = append(errorIssues, issue)
		}
	}
	if len(errorIssues) > 0 {
		uc.Log.Info("patient document rejected",
			zap.Int(constvars.LoggingIssueCountKey, len(errorIssues)),
		)
		return nil, exceptions.ErrResourceValidation(fhir_dto.FormatIssues(errorIssues))
	}

	patientID, err := uc.Engine.Put(ctx, constvars.ResourcePatient, document)
	if err != nil {
		return nil, err
	}

	stored, err := uc.Engine.Get(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, exceptions.ErrEngineGetDocument(fmt.Errorf("document %s absent after put", patientID))
	}

	uc.publishAndArchive(ctx, patientID, stored)

	return uc.buildEnvelope(patientID, stored)
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID uuid.UUID) (*responses.PatientEnvelope, error) {
	stored, err := uc.Engine.Get(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourcePatient, patientID.String())
	}
	return uc.buildEnvelope(patientID, stored)
}

// SearchPatients rejects malformed enum and date criteria before any engine
// call, then hands one identical compiled filter to Search and Count.
func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) (*fhir_dto.Bundle, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	criteria := &queries.SearchCriteria{
		PageSize:   request.PageSize,
		PageOffset: request.PageOffset,
	}
	if request.Name != "" {
		criteria.Name = &request.Name
	}
	if request.Category != "" {
		gender, err := fhir_dto.ParseAdministrativeGender(request.Category)
		if err != nil {
			return nil, exceptions.ErrInvalidEnumValue(request.Category, constvars.URLQueryParamCategory)
		}
		criteria.Category = &gender
	}
	if request.BirthdateFrom != "" {
		if !queries.ValidateDateShape(request.BirthdateFrom) {
			return nil, exceptions.ErrInvalidDateShape(constvars.URLQueryParamBirthdateFrom)
		}
		criteria.BirthdateFrom = &request.BirthdateFrom
	}
	if request.BirthdateTo != "" {
		if !queries.ValidateDateShape(request.BirthdateTo) {
			return nil, exceptions.ErrInvalidDateShape(constvars.URLQueryParamBirthdateTo)
		}
		criteria.BirthdateTo = &request.BirthdateTo
	}

	filter := queries.Compile(criteria)

	ids, err := uc.Engine.Search(ctx, constvars.ResourcePatient, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.Engine.Count(ctx, constvars.ResourcePatient, filter)
	if err != nil {
		return nil, err
	}

	page := &fhir_dto.ResultPage{IDs: ids, Total: total}
	selfPath := fmt.Sprintf("/%s/%s", uc.InternalConfig.App.EndpointPrefix, constvars.ResourcePatient)

	bundle, err := uc.BundleAssembler.Assemble(ctx, constvars.ResourcePatient, page, criteria, request, selfPath)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patient search completed",
		zap.ByteString(constvars.LoggingFilterKey, filter),
		zap.Int(constvars.LoggingTotalKey, bundle.Total),
		zap.Int(constvars.LoggingEntryCountKey, len(bundle.Entry)),
	)
	return bundle, nil
}

func (uc *patientUsecase) publishAndArchive(ctx context.Context, patientID uuid.UUID, stored []byte) {
	if uc.EventPublisher != nil {
		if err := uc.EventPublisher.PublishResourceCreated(ctx, constvars.ResourcePatient, patientID, stored); err != nil {
			uc.Log.Warn("resource created event not published",
				zap.String(constvars.LoggingPatientIDKey, patientID.String()),
				zap.Error(err),
			)
		}
	}
	if uc.ArchiveService != nil && uc.InternalConfig.Archive.Enabled {
		if err := uc.ArchiveService.ArchiveResource(ctx, constvars.ResourcePatient, patientID, stored); err != nil {
			uc.Log.Warn("resource payload not archived",
				zap.String(constvars.LoggingPatientIDKey, patientID.String()),
				zap.Error(err),
			)
		}
	}
}

func (uc *patientUsecase) buildEnvelope(patientID uuid.UUID, stored []byte) (*responses.PatientEnvelope, error) {
	normalized, err := envelope.Normalize(stored)
	if err != nil {
		return nil, exceptions.ErrEnvelopeNormalization(err)
	}

	lastUpdated, _ := envelope.LastUpdated(normalized)
	return &responses.PatientEnvelope{
		ID:          patientID.String(),
		VersionID:   envelope.VersionID(normalized),
		LastUpdated: lastUpdated,
		Body:        normalized,
	}, nil
}
