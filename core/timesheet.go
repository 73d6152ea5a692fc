package core

import (
	"log"
	"time"
)

type EntryEmployeeDTO struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type EntryProjectDTO struct {
	Name         string `json:"name"`
	ContractType string `json:"contractType"`
}

type EntryCostCodeDTO struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Billable    bool    `json:"billable"`
}

type EntryWorkTypeDTO struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// TimesheetEntryDTO is one listing row denormalized with its reference
// joins. Optional joins come back as zero values.
type TimesheetEntryDTO struct {
	ID                   int64      `json:"id"`
	EmployeeID           string     `json:"employeeId"`
	Date                 string     `json:"date"`
	BusinessUnit         string     `json:"businessUnit"`
	UnitName             string     `gorm:"column:unit_name" json:"businessUnitName"`
	ProjectID            string     `json:"projectId"`
	JobID                string     `json:"jobId"`
	JobName              string     `gorm:"column:job_name" json:"jobName"`
	WorkOrderID          string     `json:"workOrderId"`
	WorkOrderDescription string     `gorm:"column:work_order_description" json:"workOrderDescription"`
	WorkType             string     `json:"workType"`
	CostCode             *string    `json:"costCode"`
	HoursWorked          float64    `json:"hoursWorked"`
	BreakHours           float64    `json:"breakHours"`
	BillableHours        float64    `json:"billableHours"`
	Description          string     `json:"description"`
	Approved             bool       `json:"approved"`
	ApprovedBy           *string    `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	Rejected             bool       `json:"rejected"`
	RejectionReason      *string    `json:"rejectionReason,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`

	Employee     EntryEmployeeDTO `gorm:"embedded;embeddedPrefix:employee_" json:"employee"`
	Project      EntryProjectDTO  `gorm:"embedded;embeddedPrefix:project_" json:"project"`
	CostCodeInfo EntryCostCodeDTO `gorm:"embedded;embeddedPrefix:cost_code_" json:"costCodeInfo"`
	WorkTypeInfo EntryWorkTypeDTO `gorm:"embedded;embeddedPrefix:work_type_" json:"workTypeInfo"`
}

// entryColumns maps the field names a sanitized record arrives with to
// the columns the store writes. Unknown keys are dropped here and again
// by the column whitelist.
var entryColumns = map[string]string{
	"employeeId":      "employee_id",
	"date":            "date",
	"businessUnit":    "business_unit",
	"projectId":       "project_id",
	"jobId":           "job_id",
	"workOrderId":     "work_order_id",
	"workType":        "work_type",
	"costCode":        "cost_code",
	"hoursWorked":     "hours_worked",
	"breakHours":      "break_hours",
	"description":     "description",
	"approved":        "approved",
	"approvedBy":      "approved_by",
	"approvedAt":      "approved_at",
	"rejected":        "rejected",
	"rejectionReason": "rejection_reason",
}

// EntryRow converts a sanitized timesheet record into a column-keyed
// row ready for Store.Insert.
func EntryRow(sanitized map[string]any) map[string]any {
	row := make(map[string]any, len(sanitized))
	for field, value := range sanitized {
		if col, ok := entryColumns[field]; ok {
			row[col] = value
		}
	}
	return row
}

// TimesheetFilters narrows the listing. Zero values mean "no filter";
// Date wins over the range bounds when both are set.
type TimesheetFilters struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
	BusinessUnit string `json:"businessUnit"`
	ProjectID    string `json:"projectId"`
	Approved     *bool  `json:"approved"`
}

// GetTimesheetEntries lists entries denormalized with employee,
// business unit, project, job, work order, cost code and work type
// data. Default order: date descending then creation time descending.
// Failures degrade to an empty slice.
func (s *Store) GetTimesheetEntries(filters TimesheetFilters, opts QueryOptions) []TimesheetEntryDTO {
	db, err := s.dm.DB()
	if err != nil {
		log.Printf("getTimesheetEntries: %v", err)
		return []TimesheetEntryDTO{}
	}

	query := db.Table("timesheet_entries t").
		Select(`t.*,
            e.name AS employee_name, e.role AS employee_role,
            bu.name AS unit_name,
            p.name AS project_name, p.contract_type AS project_contract_type,
            j.name AS job_name,
            wo.description AS work_order_description,
            cc.description AS cost_code_description, cc.rate AS cost_code_rate, cc.billable AS cost_code_billable,
            wt.name AS work_type_name, wt.multiplier AS work_type_multiplier`).
		Joins("JOIN employees e ON e.id = t.employee_id").
		Joins("LEFT JOIN business_units bu ON bu.code = t.business_unit").
		Joins("LEFT JOIN projects p ON p.id = t.project_id").
		Joins("LEFT JOIN jobs j ON j.id = t.job_id").
		Joins("LEFT JOIN work_orders wo ON wo.id = t.work_order_id").
		Joins("LEFT JOIN cost_codes cc ON cc.code = t.cost_code").
		Joins("LEFT JOIN work_types wt ON wt.id = t.work_type")

	if filters.EmployeeID != "" {
		query = query.Where("t.employee_id = ?", filters.EmployeeID)
	}
	if filters.Date != "" {
		query = query.Where("t.date = ?", filters.Date)
	} else {
		if filters.DateFrom != "" {
			query = query.Where("t.date >= ?", filters.DateFrom)
		}
		if filters.DateTo != "" {
			query = query.Where("t.date <= ?", filters.DateTo)
		}
	}
	if filters.BusinessUnit != "" {
		query = query.Where("t.business_unit = ?", filters.BusinessUnit)
	}
	if filters.ProjectID != "" {
		query = query.Where("t.project_id = ?", filters.ProjectID)
	}
	if filters.Approved != nil {
		query = query.Where("t.approved = ?", *filters.Approved)
	}

	query = query.Order("t.date DESC").Order("t.created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	results := []TimesheetEntryDTO{}
	if err := query.Scan(&results).Error; err != nil {
		log.Printf("getTimesheetEntries: %v", err)
		return []TimesheetEntryDTO{}
	}
	return results
}
