package exceptions

import (
	"fmt"
	"patient-registry-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	IssueCode     string     `json:"-"`
	IssueLocation []string   `json:"-"`
	Locations     []Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		IssueCode:     issueCodeForStatus(statusCode),
		Locations:     []Location{getLocation(3)},
	}
}

// WithIssue overrides the OperationOutcome issue code and location that the
// response writer derives from the HTTP status.
func (e *CustomError) WithIssue(issueCode string, issueLocation ...string) *CustomError {
	e.IssueCode = issueCode
	e.IssueLocation = issueLocation
	return e
}

func issueCodeForStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusNotFound:
		return constvars.FhirIssueTypeNotFound
	case constvars.StatusBadRequest:
		return constvars.FhirIssueTypeInvalid
	default:
		return constvars.FhirIssueTypeException
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
