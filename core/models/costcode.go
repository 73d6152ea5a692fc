package models

type CostCode struct {
	Code        string  `gorm:"primaryKey;column:code;size:20" json:"code"`
	Description string  `gorm:"column:description;size:200" json:"description"`
	Category    string  `gorm:"column:category;size:50" json:"category"`
	Rate        float64 `gorm:"column:rate;type:decimal(10,2);not null;default:0" json:"rate"`
	Billable    bool    `gorm:"column:billable;not null;default:false" json:"billable"`
}

func (CostCode) TableName() string {
	return "cost_codes"
}

// WorkType is the advisory premium tier an entry is tagged with. The
// min/max hour bounds describe the tier, they are never enforced: daily
// totals decide the actual premium classification.
type WorkType struct {
	ID         string   `gorm:"primaryKey;column:id;size:20" json:"id"`
	Name       string   `gorm:"column:name;size:50;not null" json:"name"`
	Multiplier float64  `gorm:"column:multiplier;type:decimal(4,2);not null;default:1" json:"multiplier"`
	MinHours   *float64 `gorm:"column:min_hours;type:decimal(10,2)" json:"minHours,omitempty"`
	MaxHours   *float64 `gorm:"column:max_hours;type:decimal(10,2)" json:"maxHours,omitempty"`
}

func (WorkType) TableName() string {
	return "work_types"
}
