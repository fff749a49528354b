package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"patient-registry-service/internal/app/config"
	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/envelope"
	"patient-registry-service/internal/pkg/exceptions"
	"patient-registry-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
			InternalConfig: internalConfig,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	bodyLimit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	document, err := io.ReadAll(http.MaxBytesReader(w, r.Body, bodyLimit))
	if err != nil {
		ctrl.Log.Error("Failed to read request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "body read"),
			zap.Error(err),
		)
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, document)
	if err != nil {
		ctrl.Log.Error("Failed to create patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("patient_created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildFHIRResourceResponse(w, constvars.StatusCreated, response.Body, map[string]string{
		constvars.HeaderETag:         envelope.ETag(response.VersionID),
		constvars.HeaderLastModified: envelope.LastModifiedHeader(response.LastUpdated),
		constvars.HeaderLocation:     ctrl.patientLocation(response.ID),
	})
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	rawPatientID := chi.URLParam(r, constvars.URLParamPatientID)
	patientID, err := uuid.Parse(rawPatientID)
	if err != nil {
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.FindPatientByID(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("Failed to find patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, rawPatientID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFHIRResourceResponse(w, constvars.StatusOK, response.Body, map[string]string{
		constvars.HeaderETag:         envelope.ETag(response.VersionID),
		constvars.HeaderLastModified: envelope.LastModifiedHeader(response.LastUpdated),
	})
}

func (ctrl *PatientController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request, err := parseSearchPatientsQuery(r)
	if err != nil {
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.PatientUsecase.SearchPatients(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to search patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildOperationOutcomeResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildOperationOutcomeResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFHIRJSONResponse(w, constvars.StatusOK, bundle)
}

func (ctrl *PatientController) patientLocation(patientID string) string {
	return fmt.Sprintf("/%s/%s/%s", ctrl.InternalConfig.App.EndpointPrefix, constvars.ResourcePatient, patientID)
}

func parseSearchPatientsQuery(r *http.Request) (*requests.SearchPatients, error) {
	query := r.URL.Query()
	request := &requests.SearchPatients{
		Name:          query.Get(constvars.URLQueryParamName),
		Category:      query.Get(constvars.URLQueryParamCategory),
		BirthdateFrom: query.Get(constvars.URLQueryParamBirthdateFrom),
		BirthdateTo:   query.Get(constvars.URLQueryParamBirthdateTo),
		PageSize:      constvars.SearchPageSizeDefault,
		PageOffset:    constvars.SearchPageOffsetMin,
	}

	if raw := query.Get(constvars.URLQueryParamPageSize); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParam(err, constvars.URLQueryParamPageSize)
		}
		request.PageSize = pageSize
	}
	if raw := query.Get(constvars.URLQueryParamPageOffset); raw != "" {
		pageOffset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParam(err, constvars.URLQueryParamPageOffset)
		}
		request.PageOffset = pageOffset
	}
	return request, nil
}
