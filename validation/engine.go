// Package validation gates every write: it validates and sanitizes a
// candidate record against a named kind before the record is allowed
// anywhere near persistence. The engine is storage-independent; the
// only outside knowledge it carries is the reference-data lookup used
// for existence checks.
package validation

import (
	"fmt"
	"strings"

	"github.com/fieldtrack/fieldtrack/core/refdata"
)

// Result is what a caller renders: the record is valid iff Errors is
// empty. Warnings never affect validity. Sanitized carries the
// normalized values for every field that validated cleanly.
type Result struct {
	Valid     bool           `json:"isValid"`
	Errors    []string       `json:"errors"`
	Warnings  []string       `json:"warnings"`
	Sanitized map[string]any `json:"sanitized"`
}

// FieldResult is one validator's verdict: zero or more errors, zero or
// more warnings, and the normalized value. Sanitization and validation
// happen in the same pass.
type FieldResult struct {
	Errors   []string
	Warnings []string
	Value    any
}

// FieldValidator validates and normalizes a single field value.
type FieldValidator func(value any) FieldResult

// crossCheck applies kind-specific rules spanning several sanitized
// fields.
type crossCheck func(sanitized map[string]any) (errors, warnings []string)

type kindSpec struct {
	required []string
	fields   map[string]FieldValidator
	cross    crossCheck
}

// Engine holds the kind registry. Build one with NewEngine and share it
// by reference; there is no package-level instance.
type Engine struct {
	ref   *refdata.Lookup
	kinds map[string]kindSpec
}

func NewEngine(ref *refdata.Lookup) *Engine {
	e := &Engine{ref: ref, kinds: map[string]kindSpec{}}
	e.kinds["timesheet_entry"] = e.timesheetEntryKind()
	e.kinds["employee"] = e.employeeKind()
	e.kinds["project"] = e.projectKind()
	return e
}

// Validate checks record against the named kind. Missing required
// fields error first; every present field with a registered validator
// is then validated and sanitized in one pass; cross-field rules run
// last over the sanitized values. Errors and warnings come back
// deduplicated.
func (e *Engine) Validate(kind string, record map[string]any) Result {
	result := Result{
		Errors:    []string{},
		Warnings:  []string{},
		Sanitized: map[string]any{},
	}

	spec, ok := e.kinds[kind]
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown record kind %q", kind))
		return result
	}

	for _, field := range spec.required {
		if !isPresent(record[field]) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required", label(field)))
		}
	}

	for field, value := range record {
		validator, ok := spec.fields[field]
		if !ok || !isPresent(value) {
			continue
		}
		fr := validator(value)
		result.Errors = append(result.Errors, fr.Errors...)
		result.Warnings = append(result.Warnings, fr.Warnings...)
		if len(fr.Errors) == 0 {
			result.Sanitized[field] = fr.Value
		}
	}

	if spec.cross != nil {
		errs, warns := spec.cross(result.Sanitized)
		result.Errors = append(result.Errors, errs...)
		result.Warnings = append(result.Warnings, warns...)
	}

	result.Errors = dedupe(result.Errors)
	result.Warnings = dedupe(result.Warnings)
	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateField runs one registered field validator of a kind over a
// single value, skipping the presence and cross-field stages. Partial
// updates use it to gate the fields they touch. Reports false when the
// kind or field has no validator.
func (e *Engine) ValidateField(kind, field string, value any) (FieldResult, bool) {
	spec, ok := e.kinds[kind]
	if !ok {
		return FieldResult{}, false
	}
	validator, ok := spec.fields[field]
	if !ok {
		return FieldResult{}, false
	}
	return validator(value), true
}

// isPresent is the explicit presence predicate: a field is present when
// its value is non-nil and, for strings, not blank. Zero and false are
// present.
func isPresent(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

var fieldLabels = map[string]string{
	"employeeId":   "Employee ID",
	"businessUnit": "Business Unit",
	"projectId":    "Project ID",
	"jobId":        "Job ID",
	"workOrderId":  "Work Order ID",
	"workType":     "Work Type",
	"costCode":     "Cost Code",
	"hoursWorked":  "Hours Worked",
	"breakHours":   "Break Hours",
	"date":         "Date",
	"startDate":    "Start Date",
	"endDate":      "End Date",
	"name":         "Name",
	"role":         "Role",
	"supervisorId": "Supervisor ID",
	"id":           "ID",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}
