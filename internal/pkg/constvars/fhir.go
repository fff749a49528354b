package constvars

type ResourceType string

const (
	ResourcePatient          = "Patient"
	ResourceOperationOutcome = "OperationOutcome"
	ResourceBundle           = "Bundle"
)

const (
	FhirBundleTypeSearchset = "searchset"
)

const (
	FhirLinkRelationSelf = "self"
	FhirLinkRelationNext = "next"
)

const (
	FhirIssueSeverityFatal       = "fatal"
	FhirIssueSeverityError       = "error"
	FhirIssueSeverityWarning     = "warning"
	FhirIssueSeverityInformation = "information"
)

const (
	FhirIssueTypeInvalid     = "invalid"
	FhirIssueTypeStructure   = "structure"
	FhirIssueTypeRequired    = "required"
	FhirIssueTypeValue       = "value"
	FhirIssueTypeCodeInvalid = "code-invalid"
	FhirIssueTypeNotFound    = "not-found"
	FhirIssueTypeException   = "exception"
	FhirIssueTypeProcessing  = "processing"
)

const (
	FhirMetaInitialVersionID = "1"
)
