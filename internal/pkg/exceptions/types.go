package exceptions

import (
	"fmt"
	"patient-registry-service/internal/pkg/constvars"
)

var (
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseQueryParam = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCannotParseQueryParam, paramName))
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevEngineUnavailable)
	}

	// Resource service
	ErrResourceTypeMismatch = func(expectedKind string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest,
			fmt.Sprintf(constvars.ErrClientResourceTypeMismatchFormat, expectedKind),
			fmt.Sprintf(constvars.ErrDevResourceTypeMismatch, expectedKind),
		).WithIssue(constvars.FhirIssueTypeInvalid, expectedKind+".resourceType")
	}
	ErrResourceValidation = func(diagnostics string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest,
			diagnostics,
			fmt.Sprintf(constvars.ErrDevResourceValidationIssue, diagnostics),
		).WithIssue(constvars.FhirIssueTypeInvalid)
	}
	ErrInvalidEnumValue = func(raw, location string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest,
			fmt.Sprintf(constvars.ErrClientInvalidGenderFormat, raw),
			fmt.Sprintf(constvars.ErrDevEnumValueNotInSet, raw),
		).WithIssue(constvars.FhirIssueTypeCodeInvalid, location)
	}
	ErrInvalidDateShape = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest,
			fmt.Sprintf(constvars.ErrClientInvalidDateShapeFormat, paramName),
			fmt.Sprintf(constvars.ErrDevDateShapeRejected, paramName),
		).WithIssue(constvars.FhirIssueTypeValue, paramName)
	}
	ErrResourceNotFound = func(kind, resourceID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound,
			fmt.Sprintf(constvars.ErrClientResourceNotFoundFormat, kind, resourceID),
			fmt.Sprintf(constvars.ErrDevResourceNotFound, kind, resourceID),
		).WithIssue(constvars.FhirIssueTypeNotFound, fmt.Sprintf("%s/%s", kind, resourceID))
	}

	// Document engine
	ErrEngineUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientStoreUnavailable, constvars.ErrDevEngineUnavailable)
	}
	ErrEngineMalformedDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEngineMalformedDocument)
	}
	ErrEnginePutDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientStoreUnavailable, constvars.ErrDevEnginePutFailed)
	}
	ErrEngineGetDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientStoreUnavailable, constvars.ErrDevEngineGetFailed)
	}
	ErrEngineSearchDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientStoreUnavailable, constvars.ErrDevEngineSearchFailed)
	}
	ErrEngineCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientStoreUnavailable, constvars.ErrDevEngineCountFailed)
	}

	// Envelope
	ErrEnvelopeNormalization = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEnvelopeNormalization)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSetData)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisFailedToGetData, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDelete)
	}

	// Messaging
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
)
