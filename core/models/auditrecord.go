package models

import "time"

const (
	AuditInsert = "INSERT"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditRecord is one append-only line of the change log. OldData and
// NewData are opaque JSON snapshots; nothing in this layer reads them
// back.
type AuditRecord struct {
	ID          string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	EntityTable string    `gorm:"column:table_name;size:50;not null;index" json:"tableName"`
	RecordID    string    `gorm:"column:record_id;size:50;not null;index" json:"recordId"`
	Action      string    `gorm:"column:action;size:10;not null" json:"action"`
	OldData     *string   `gorm:"column:old_data" json:"oldData,omitempty"`
	NewData     *string   `gorm:"column:new_data" json:"newData,omitempty"`
	ChangedBy   *string   `gorm:"column:changed_by;size:50" json:"changedBy,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (AuditRecord) TableName() string {
	return "audit_records"
}

// SchemaInfo holds the single version row backing the migration
// placeholder.
type SchemaInfo struct {
	Version   int       `gorm:"primaryKey;column:version" json:"version"`
	AppliedAt time.Time `gorm:"column:applied_at" json:"appliedAt"`
}

func (SchemaInfo) TableName() string {
	return "schema_info"
}
