package models

// Contract types and project statuses match the values carried in the
// reference dataset.
const (
	ContractTimeAndMaterials = "Time & Materials"
	ContractFixedBid         = "Fixed Bid"
	ContractUnitPrice        = "Unit Price"

	ProjectActive    = "Active"
	ProjectOnHold    = "On Hold"
	ProjectCompleted = "Completed"
	ProjectCancelled = "Cancelled"
)

type Project struct {
	ID           string `gorm:"primaryKey;column:id;size:20" json:"id"`
	Name         string `gorm:"column:name;size:100;not null" json:"name"`
	BusinessUnit string `gorm:"column:business_unit;size:10;not null;index" json:"businessUnit"`
	ContractType string `gorm:"column:contract_type;size:30;not null" json:"contractType"`
	Status       string `gorm:"column:status;size:20;not null" json:"status"`
	StartDate    string `gorm:"column:start_date;size:10" json:"startDate"`
	EndDate      string `gorm:"column:end_date;size:10" json:"endDate"`

	Unit BusinessUnit `gorm:"foreignKey:BusinessUnit;references:Code" json:"-"`
	Jobs []Job        `gorm:"foreignKey:ProjectID;references:ID" json:"jobs,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

type Job struct {
	ID        string `gorm:"primaryKey;column:id;size:20" json:"id"`
	ProjectID string `gorm:"column:project_id;size:20;not null;index" json:"projectId"`
	Name      string `gorm:"column:name;size:100;not null" json:"name"`
	Seq       int    `gorm:"column:seq;not null;default:0" json:"seq"`

	WorkOrders []WorkOrder `gorm:"foreignKey:JobID;references:ID" json:"workOrders,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}

type WorkOrder struct {
	ID          string `gorm:"primaryKey;column:id;size:20" json:"id"`
	JobID       string `gorm:"column:job_id;size:20;not null;index" json:"jobId"`
	Description string `gorm:"column:description;size:200" json:"description"`
	CostCode    string `gorm:"column:cost_code;size:20" json:"costCode"`
	Priority    string `gorm:"column:priority;size:20" json:"priority"`
	Status      string `gorm:"column:status;size:20" json:"status"`
	Seq         int    `gorm:"column:seq;not null;default:0" json:"seq"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}
