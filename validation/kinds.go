package validation

// Kind registrations and their cross-field rules.

func (e *Engine) timesheetEntryKind() kindSpec {
	return kindSpec{
		required: []string{"employeeId", "date", "businessUnit", "projectId", "hoursWorked"},
		fields: map[string]FieldValidator{
			"employeeId":   identifier("Employee ID", employeeIDPattern, e.ref.HasEmployee),
			"businessUnit": identifier("Business Unit", businessUnitPattern, e.ref.HasBusinessUnit),
			"projectId":    identifier("Project ID", projectIDPattern, e.ref.HasProject),
			"jobId":        member("Job ID", e.ref.HasJob),
			"workOrderId":  member("Work Order ID", e.ref.HasWorkOrder),
			"date":         entryDate("Date"),
			"hoursWorked":  hoursWorked(),
			"breakHours":   breakHours(),
			"workType":     member("Work Type", e.ref.HasWorkType),
			"costCode":     member("Cost Code", e.ref.HasCostCode),
		},
		cross: e.timesheetEntryCross,
	}
}

// timesheetEntryCross runs over the sanitized values only: a field that
// already failed its own validator is not second-guessed here.
func (e *Engine) timesheetEntryCross(sanitized map[string]any) (errs, warns []string) {
	hours, hasHours := sanitized["hoursWorked"].(float64)
	if breaks, ok := sanitized["breakHours"].(float64); ok && hasHours {
		if hours+breaks > 24 {
			errs = append(errs, "Hours Worked plus Break Hours cannot exceed 24")
		}
	}

	date, hasDate := sanitized["date"].(string)
	if projectID, ok := sanitized["projectId"].(string); ok && hasDate {
		if project, found := e.ref.Project(projectID); found {
			// yyyy-MM-dd compares correctly as a string
			if project.StartDate != "" && date < project.StartDate {
				errs = append(errs, "Date is before the project start date")
			}
			if project.EndDate != "" && date > project.EndDate {
				warns = append(warns, "Date is after the project end date")
			}
		}
	}

	// Advisory only: the daily total decides the real premium tier.
	if workType, ok := sanitized["workType"].(string); ok && hasHours {
		switch workType {
		case "OVERTIME":
			if hours <= 8 {
				warns = append(warns, "OVERTIME is tagged but hours do not exceed 8")
			}
		case "DOUBLETIME":
			if hours <= 12 {
				warns = append(warns, "DOUBLETIME is tagged but hours do not exceed 12")
			}
		}
	}

	return errs, warns
}

func (e *Engine) employeeKind() kindSpec {
	return kindSpec{
		required: []string{"id", "name", "businessUnit"},
		fields: map[string]FieldValidator{
			"id":           identifier("ID", employeeIDPattern, nil),
			"name":         personName("Name"),
			"businessUnit": identifier("Business Unit", businessUnitPattern, e.ref.HasBusinessUnit),
			"supervisorId": identifier("Supervisor ID", employeeIDPattern, e.ref.HasEmployee),
		},
	}
}

func (e *Engine) projectKind() kindSpec {
	return kindSpec{
		required: []string{"id", "name", "businessUnit", "startDate"},
		fields: map[string]FieldValidator{
			"id":           identifier("ID", projectIDPattern, nil),
			"name":         textField("Name", 2, 100),
			"businessUnit": identifier("Business Unit", businessUnitPattern, e.ref.HasBusinessUnit),
			"startDate":    plainDate("Start Date"),
			"endDate":      plainDate("End Date"),
		},
		cross: projectCross,
	}
}

func projectCross(sanitized map[string]any) (errs, warns []string) {
	start, okStart := sanitized["startDate"].(string)
	end, okEnd := sanitized["endDate"].(string)
	if okStart && okEnd && end < start {
		errs = append(errs, "End Date cannot be before Start Date")
	}
	return errs, warns
}
