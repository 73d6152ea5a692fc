package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fieldtrack/fieldtrack/utils"
)

var (
	employeeIDPattern   = regexp.MustCompile(`^[A-Z]{2,5}\d{3,6}$`)
	projectIDPattern    = regexp.MustCompile(`^[A-Z][A-Z0-9-]{0,19}$`)
	businessUnitPattern = regexp.MustCompile(`^\d{6}$`)
	namePattern         = regexp.MustCompile(`^[A-Za-z .'-]+$`)
)

// identifier trims and upper-cases, checks the format regex, then
// checks existence against reference data. Format failure and
// existence failure are distinct errors and both are reported when both
// apply.
func identifier(fieldLabel string, pattern *regexp.Regexp, exists func(string) bool) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a string", fieldLabel)}, Value: value}
		}
		s = strings.ToUpper(strings.TrimSpace(s))

		fr := FieldResult{Value: s}
		if !pattern.MatchString(s) {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s has an invalid format", fieldLabel))
		}
		if exists != nil && !exists(s) {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s does not exist", fieldLabel))
		}
		return fr
	}
}

// personName trims, collapses internal whitespace and title-cases, then
// enforces the length window and character whitelist on the sanitized
// value.
func personName(fieldLabel string) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a string", fieldLabel)}, Value: value}
		}
		s = utils.TitleCase(utils.CollapseWhitespace(s))

		fr := FieldResult{Value: s}
		if len(s) < 2 || len(s) > 100 {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s must be between 2 and 100 characters", fieldLabel))
		}
		if s != "" && !namePattern.MatchString(s) {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s contains invalid characters", fieldLabel))
		}
		return fr
	}
}

// entryDate requires strict yyyy-MM-dd, then enforces the business
// window: more than 365 days in the past or more than 30 days in the
// future is an error. A weekend date is a warning, never an error.
func entryDate(fieldLabel string) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a yyyy-MM-dd string", fieldLabel)}, Value: value}
		}
		s = strings.TrimSpace(s)

		t, err := utils.ParseDate(s)
		if err != nil {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a valid yyyy-MM-dd date", fieldLabel)}, Value: s}
		}

		fr := FieldResult{Value: s}
		now := time.Now().UTC()
		if utils.DaysBetween(t, now) > 365 {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s cannot be more than 365 days in the past", fieldLabel))
		}
		if utils.DaysBetween(now, t) > 30 {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s cannot be more than 30 days in the future", fieldLabel))
		}
		if utils.IsWeekend(t) {
			fr.Warnings = append(fr.Warnings, fmt.Sprintf("%s falls on a weekend", fieldLabel))
		}
		return fr
	}
}

// plainDate is the format-only date check used for reference-entity
// dates, which legitimately live outside the entry window.
func plainDate(fieldLabel string) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a yyyy-MM-dd string", fieldLabel)}, Value: value}
		}
		s = strings.TrimSpace(s)
		if _, err := utils.ParseDate(s); err != nil {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a valid yyyy-MM-dd date", fieldLabel)}, Value: s}
		}
		return FieldResult{Value: s}
	}
}

// hoursWorked coerces to a number rounded to 2 decimals. Negative or
// >24 is an error; >16 and off-quarter-hour values are warnings.
func hoursWorked() FieldValidator {
	return func(value any) FieldResult {
		v, ok := coerceNumber(value)
		if !ok {
			return FieldResult{Errors: []string{"Hours Worked must be a number"}, Value: value}
		}
		v = math.Round(v*100) / 100

		fr := FieldResult{Value: v}
		switch {
		case v < 0:
			fr.Errors = append(fr.Errors, "Hours Worked cannot be negative")
		case v > 24:
			fr.Errors = append(fr.Errors, "Hours Worked cannot exceed 24")
		}
		if v > 16 && v <= 24 {
			fr.Warnings = append(fr.Warnings, "Hours Worked exceeds 16 hours")
		}
		nearest := math.Round(v/0.25) * 0.25
		if math.Abs(v-nearest) > 0.001 {
			fr.Warnings = append(fr.Warnings, "Hours Worked should be in 15-minute increments")
		}
		return fr
	}
}

// breakHours coerces to a number defaulting to 0. Invalid or negative
// input silently normalizes to 0 and above-range input clamps to 4.
// Unlike hoursWorked it never reports an error.
func breakHours() FieldValidator {
	return func(value any) FieldResult {
		v, ok := coerceNumber(value)
		if !ok || v < 0 {
			v = 0
		}
		if v > 4 {
			v = 4
		}
		return FieldResult{Value: math.Round(v*100) / 100}
	}
}

// textField trims and collapses whitespace, then enforces a length
// window. Used for free-text fields that may legitimately carry digits.
func textField(fieldLabel string, minLen, maxLen int) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a string", fieldLabel)}, Value: value}
		}
		s = utils.CollapseWhitespace(s)

		fr := FieldResult{Value: s}
		if len(s) < minLen || len(s) > maxLen {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s must be between %d and %d characters", fieldLabel, minLen, maxLen))
		}
		return fr
	}
}

// member checks membership against a reference catalog after
// trim/upper normalization.
func member(fieldLabel string, exists func(string) bool) FieldValidator {
	return func(value any) FieldResult {
		s, ok := value.(string)
		if !ok {
			return FieldResult{Errors: []string{fmt.Sprintf("%s must be a string", fieldLabel)}, Value: value}
		}
		s = strings.ToUpper(strings.TrimSpace(s))

		fr := FieldResult{Value: s}
		if !exists(s) {
			fr.Errors = append(fr.Errors, fmt.Sprintf("%s does not exist", fieldLabel))
		}
		return fr
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}
