package utils

import (
	"errors"
	"net/http"

	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/exceptions"
	"patient-registry-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildFHIRResourceResponse writes an already-serialized FHIR resource body.
// Headers must be set before the status code is written.
func BuildFHIRResourceResponse(w http.ResponseWriter, code int, body []byte, headers map[string]string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	for name, value := range headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(code)
	w.Write(body)
}

// BuildFHIRJSONResponse serializes a response DTO (bundle, outcome) as FHIR JSON.
func BuildFHIRJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// BuildOperationOutcomeResponse renders any error as the uniform
// OperationOutcome diagnostic shape, so clients pattern-match on
// severity/code/diagnostics/location rather than on error types.
func BuildOperationOutcomeResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	issueCode := constvars.FhirIssueTypeException
	diagnostics := constvars.ErrClientSomethingWrongWithApplication
	var issueLocation []string

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		issueCode = customErr.IssueCode
		diagnostics = customErr.ClientMessage
		issueLocation = customErr.IssueLocation
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error())
	}

	outcome := fhir_dto.OperationOutcome{
		ResourceType: constvars.ResourceOperationOutcome,
		Issue: []fhir_dto.Issue{
			{
				Severity:    constvars.FhirIssueSeverityError,
				Code:        issueCode,
				Diagnostics: diagnostics,
				Location:    issueLocation,
			},
		},
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(outcome)
}
