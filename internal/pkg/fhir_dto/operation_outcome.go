package fhir_dto

import "strings"

type OperationOutcome struct {
	ResourceType string  `json:"resourceType"`
	Issue        []Issue `json:"issue"`
}

type Issue struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics,omitempty"`
	Location    []string `json:"location,omitempty"`
}

// IsError reports whether the issue blocks acceptance of a resource.
func (i Issue) IsError() bool {
	return i.Severity == "error" || i.Severity == "fatal"
}

// FormatIssues renders every issue into one aggregated diagnostic line,
// severity and location included, never truncated.
func FormatIssues(issues []Issue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		location := ""
		if len(issue.Location) > 0 {
			location = strings.Join(issue.Location, ",")
		}
		parts = append(parts, "["+issue.Severity+"] "+location+" - "+issue.Diagnostics)
	}
	return strings.Join(parts, "; ")
}
