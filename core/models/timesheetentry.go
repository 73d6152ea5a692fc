package models

import "time"

// TimesheetEntry is one employee/day/hierarchy-slot line. JobID,
// WorkOrderID and WorkType are "" rather than NULL when absent so the
// composite unique index arbitrates duplicates the same way on every
// store (NULLs compare distinct under both mysql and sqlite).
//
// BillableHours is materialized at write time from the cost code's
// billable flag; it is never recomputed on read.
type TimesheetEntry struct {
	ID              int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	EmployeeID      string     `gorm:"column:employee_id;size:20;not null;uniqueIndex:ux_entry_slot,priority:1" json:"employeeId"`
	Date            string     `gorm:"column:date;size:10;not null;uniqueIndex:ux_entry_slot,priority:2;index" json:"date"`
	BusinessUnit    string     `gorm:"column:business_unit;size:10;not null;index" json:"businessUnit"`
	ProjectID       string     `gorm:"column:project_id;size:20;not null;uniqueIndex:ux_entry_slot,priority:3" json:"projectId"`
	JobID           string     `gorm:"column:job_id;size:20;not null;default:'';uniqueIndex:ux_entry_slot,priority:4" json:"jobId"`
	WorkOrderID     string     `gorm:"column:work_order_id;size:20;not null;default:'';uniqueIndex:ux_entry_slot,priority:5" json:"workOrderId"`
	WorkType        string     `gorm:"column:work_type;size:20;not null;default:'';uniqueIndex:ux_entry_slot,priority:6" json:"workType"`
	CostCode        *string    `gorm:"column:cost_code;size:20" json:"costCode,omitempty"`
	HoursWorked     float64    `gorm:"column:hours_worked;type:decimal(10,2);not null" json:"hoursWorked"`
	BreakHours      float64    `gorm:"column:break_hours;type:decimal(10,2);not null;default:0" json:"breakHours"`
	BillableHours   float64    `gorm:"column:billable_hours;type:decimal(10,2);not null;default:0" json:"billableHours"`
	Description     string     `gorm:"column:description;size:500" json:"description"`
	Approved        bool       `gorm:"column:approved;not null;default:false" json:"approved"`
	ApprovedBy      *string    `gorm:"column:approved_by;size:50" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	Rejected        bool       `gorm:"column:rejected;not null;default:false" json:"rejected"`
	RejectionReason *string    `gorm:"column:rejection_reason;size:500" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updatedAt"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"-"`
	Project  Project  `gorm:"foreignKey:ProjectID;references:ID" json:"-"`
}

func (TimesheetEntry) TableName() string {
	return "timesheet_entries"
}
