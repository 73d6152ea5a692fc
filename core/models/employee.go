package models

type Employee struct {
	ID           string  `gorm:"primaryKey;column:id;size:20" json:"id"`
	Name         string  `gorm:"column:name;size:100;not null" json:"name"`
	Role         string  `gorm:"column:role;size:50" json:"role"`
	BusinessUnit string  `gorm:"column:business_unit;size:10;not null;index" json:"businessUnit"`
	SupervisorID *string `gorm:"column:supervisor_id;size:20" json:"supervisorId,omitempty"`
	Active       bool    `gorm:"column:active;not null;default:true" json:"active"`

	Unit BusinessUnit `gorm:"foreignKey:BusinessUnit;references:Code" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
