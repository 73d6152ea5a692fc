package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack/core/refdata"
	"github.com/fieldtrack/fieldtrack/utils"
)

func newTestEngine() *Engine {
	return NewEngine(refdata.NewLookup(refdata.Default()))
}

// weekday returns a recent date guaranteed to be Mon-Fri, so tests
// about errors vs warnings are not polluted by the weekend warning.
func weekday(daysAgo int) string {
	t := time.Now().UTC().AddDate(0, 0, -daysAgo)
	for utils.IsWeekend(t) {
		t = t.AddDate(0, 0, -1)
	}
	return utils.FormatDate(t)
}

func validEntry() map[string]any {
	return map[string]any{
		"employeeId":   "EMP001",
		"date":         weekday(3),
		"businessUnit": "220000",
		"projectId":    "P1",
		"hoursWorked":  8.0,
		"workType":     "REGULAR",
	}
}

func TestValidateUnknownKind(t *testing.T) {
	result := newTestEngine().Validate("banana", map[string]any{})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unknown record kind")
}

func TestValidateRequiredFields(t *testing.T) {
	engine := newTestEngine()

	t.Run("missing hoursWorked", func(t *testing.T) {
		record := validEntry()
		delete(record, "hoursWorked")

		result := engine.Validate("timesheet_entry", record)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Hours Worked is required")
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		record := validEntry()
		record["employeeId"] = "   "

		result := engine.Validate("timesheet_entry", record)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Employee ID is required")
	})

	t.Run("zero is present", func(t *testing.T) {
		record := validEntry()
		record["hoursWorked"] = 0.0

		result := engine.Validate("timesheet_entry", record)
		assert.True(t, result.Valid, "errors: %v", result.Errors)
		assert.Equal(t, 0.0, result.Sanitized["hoursWorked"])
	})
}

func TestValidateHappyPath(t *testing.T) {
	result := newTestEngine().Validate("timesheet_entry", validEntry())

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "EMP001", result.Sanitized["employeeId"])
	assert.Equal(t, "220000", result.Sanitized["businessUnit"])
	assert.Equal(t, "P1", result.Sanitized["projectId"])
	assert.Equal(t, 8.0, result.Sanitized["hoursWorked"])
}

func TestValidateDeduplicatesMessages(t *testing.T) {
	engine := newTestEngine()

	// hoursWorked missing fires the required error once even though two
	// stages could complain about it
	record := validEntry()
	record["hoursWorked"] = nil

	result := engine.Validate("timesheet_entry", record)
	count := 0
	for _, e := range result.Errors {
		if e == "Hours Worked is required" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestValidateWarningsDoNotBlock(t *testing.T) {
	record := validEntry()
	record["hoursWorked"] = 8.3

	result := newTestEngine().Validate("timesheet_entry", record)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Equal(t, 8.3, result.Sanitized["hoursWorked"])

	found := false
	for _, w := range result.Warnings {
		if w == "Hours Worked should be in 15-minute increments" {
			found = true
		}
	}
	assert.True(t, found, fmt.Sprintf("warnings: %v", result.Warnings))
}

func TestValidateField(t *testing.T) {
	engine := newTestEngine()

	t.Run("runs the registered validator", func(t *testing.T) {
		fr, ok := engine.ValidateField("timesheet_entry", "hoursWorked", 999.0)
		require.True(t, ok)
		assert.Contains(t, fr.Errors, "Hours Worked cannot exceed 24")
	})

	t.Run("returns the sanitized value", func(t *testing.T) {
		fr, ok := engine.ValidateField("timesheet_entry", "breakHours", 9.0)
		require.True(t, ok)
		assert.Empty(t, fr.Errors)
		assert.Equal(t, 4.0, fr.Value)
	})

	t.Run("unknown kind or field reports false", func(t *testing.T) {
		_, ok := engine.ValidateField("banana", "hoursWorked", 8.0)
		assert.False(t, ok)
		_, ok = engine.ValidateField("timesheet_entry", "banana", 8.0)
		assert.False(t, ok)
	})
}

func TestValidateIdentifierNormalization(t *testing.T) {
	record := validEntry()
	record["employeeId"] = "  emp001 "

	result := newTestEngine().Validate("timesheet_entry", record)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Equal(t, "EMP001", result.Sanitized["employeeId"])
}

func TestValidateFormatAndExistenceAreDistinct(t *testing.T) {
	record := validEntry()
	record["employeeId"] = "!!bogus!!"

	result := newTestEngine().Validate("timesheet_entry", record)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Employee ID has an invalid format")
	assert.Contains(t, result.Errors, "Employee ID does not exist")
}
