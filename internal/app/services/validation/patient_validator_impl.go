package validation

import (
	"context"
	"fmt"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"

	"github.com/buger/jsonparser"
)

// patientValidator checks raw patient documents before they reach the store.
// It reads the payload with jsonparser so unknown fields pass through
// untouched and unvalidated.
type patientValidator struct{}

func NewPatientValidator() contracts.ResourceValidator {
	return &patientValidator{}
}

func (v *patientValidator) Validate(ctx context.Context, document []byte) ([]fhir_dto.Issue, error) {
	issues := []fhir_dto.Issue{}

	if err := validateObject(document); err != nil {
		issues = append(issues, fhir_dto.Issue{
			Severity:    constvars.FhirIssueSeverityFatal,
			Code:        constvars.FhirIssueTypeStructure,
			Diagnostics: "Document is not a JSON object",
		})
		return issues, nil
	}

	resourceType, err := jsonparser.GetString(document, "resourceType")
	if err != nil || resourceType == "" {
		issues = append(issues, fhir_dto.Issue{
			Severity:    constvars.FhirIssueSeverityError,
			Code:        constvars.FhirIssueTypeRequired,
			Diagnostics: "resourceType is required",
			Location:    []string{"resourceType"},
		})
	}

	if raw, dataType, _, _ := jsonparser.Get(document, "gender"); dataType != jsonparser.NotExist && dataType != jsonparser.Null {
		if dataType != jsonparser.String {
			issues = append(issues, fhir_dto.Issue{
				Severity:    constvars.FhirIssueSeverityError,
				Code:        constvars.FhirIssueTypeValue,
				Diagnostics: "gender must be a string",
				Location:    []string{"Patient.gender"},
			})
		} else if _, err := fhir_dto.ParseAdministrativeGender(string(raw)); err != nil {
			issues = append(issues, fhir_dto.Issue{
				Severity:    constvars.FhirIssueSeverityError,
				Code:        constvars.FhirIssueTypeCodeInvalid,
				Diagnostics: fmt.Sprintf(constvars.ErrClientInvalidGenderFormat, string(raw)),
				Location:    []string{"Patient.gender"},
			})
		}
	}

	if raw, dataType, _, _ := jsonparser.Get(document, "birthDate"); dataType != jsonparser.NotExist && dataType != jsonparser.Null {
		if dataType != jsonparser.String || !queries.ValidateDateShape(string(raw)) {
			issues = append(issues, fhir_dto.Issue{
				Severity:    constvars.FhirIssueSeverityError,
				Code:        constvars.FhirIssueTypeValue,
				Diagnostics: fmt.Sprintf(constvars.ErrClientInvalidDateShapeFormat, "birthDate"),
				Location:    []string{"Patient.birthDate"},
			})
		}
	}

	if _, dataType, _, _ := jsonparser.Get(document, "name"); dataType != jsonparser.NotExist && dataType != jsonparser.Null {
		if dataType != jsonparser.Array {
			issues = append(issues, fhir_dto.Issue{
				Severity:    constvars.FhirIssueSeverityError,
				Code:        constvars.FhirIssueTypeStructure,
				Diagnostics: "name must be an array",
				Location:    []string{"Patient.name"},
			})
		}
	}

	return issues, nil
}

func validateObject(document []byte) error {
	_, dataType, _, err := jsonparser.Get(document)
	if err != nil {
		return err
	}
	if dataType != jsonparser.Object {
		return fmt.Errorf("unexpected top-level %s", dataType)
	}
	return nil
}
