package models

// BusinessUnit is the top-level organisational grouping that owns
// projects and employees. Rows come from seeding only.
type BusinessUnit struct {
	Code   string `gorm:"primaryKey;column:code;size:10" json:"code"`
	Name   string `gorm:"column:name;size:100;not null" json:"name"`
	Active bool   `gorm:"column:active;not null;default:true" json:"active"`
}

func (BusinessUnit) TableName() string {
	return "business_units"
}
