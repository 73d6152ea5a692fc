package core

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/fieldtrack/fieldtrack/core/models"
)

// AuditLogger appends before/after snapshots for every mutation. It is
// fire-and-forget: a logging failure is reported to the log and
// absorbed, it can never abort the mutation it describes.
type AuditLogger struct {
	dm *DatabaseManager
}

func NewAuditLogger(dm *DatabaseManager) *AuditLogger {
	return &AuditLogger{dm: dm}
}

// Append writes one immutable audit row. Snapshots are serialized to
// JSON and never interpreted again; nil snapshots stay NULL.
func (al *AuditLogger) Append(tableName, recordID, action string, oldData, newData any, actor string) {
	db, err := al.dm.DB()
	if err != nil {
		log.Printf("audit %s %s/%s: %v", action, tableName, recordID, err)
		return
	}

	record := models.AuditRecord{
		ID:          uuid.NewString(),
		EntityTable: tableName,
		RecordID:    recordID,
		Action:      action,
	}
	if actor != "" {
		record.ChangedBy = &actor
	}
	if snap := marshalSnapshot(oldData); snap != nil {
		record.OldData = snap
	}
	if snap := marshalSnapshot(newData); snap != nil {
		record.NewData = snap
	}

	if err := db.Create(&record).Error; err != nil {
		log.Printf("audit %s %s/%s: append failed: %v", action, tableName, recordID, err)
	}
}

func marshalSnapshot(v any) *string {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		// fall back to a lossy representation rather than dropping the row
		s := fmt.Sprintf("%v", v)
		return &s
	}
	s := string(raw)
	return &s
}
