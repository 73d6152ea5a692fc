package core

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/fieldtrack/fieldtrack/core/models"
	"github.com/fieldtrack/fieldtrack/core/refdata"
)

// SchemaVersion is the version the code expects. Bump together with an
// appended migration step.
const SchemaVersion = 1

// migrationStep upgrades the schema from Version-1 to Version. The list
// is a placeholder: versioning is tracked, no steps exist yet.
type migrationStep struct {
	Version int
	Apply   func(db *gorm.DB) error
}

var migrations []migrationStep

// SchemaManager creates tables and seeds reference data. All of its
// operations are repeat-safe.
type SchemaManager struct {
	dm *DatabaseManager
}

func NewSchemaManager(dm *DatabaseManager) *SchemaManager {
	return &SchemaManager{dm: dm}
}

// CreateSchema creates every table that does not exist yet. Calling it
// again is a no-op for tables already in place.
func (sm *SchemaManager) CreateSchema() error {
	db, err := sm.dm.DB()
	if err != nil {
		return err
	}

	for _, table := range models.All() {
		m := table.Model()
		if db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().CreateTable(m); err != nil {
			return &ExecutionError{Op: fmt.Sprintf("create table %s", table.Name), Err: err}
		}
	}

	return sm.ensureVersionRow(db)
}

func (sm *SchemaManager) ensureVersionRow(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SchemaInfo{}).Count(&count).Error; err != nil {
		return &ExecutionError{Op: "read schema version", Err: err}
	}
	if count > 0 {
		return nil
	}
	row := models.SchemaInfo{Version: SchemaVersion, AppliedAt: time.Now()}
	if err := db.Create(&row).Error; err != nil {
		return &ExecutionError{Op: "write schema version", Err: err}
	}
	return nil
}

// Version reads the stored schema version; 0 when no row exists.
func (sm *SchemaManager) Version() (int, error) {
	db, err := sm.dm.DB()
	if err != nil {
		return 0, err
	}
	var info models.SchemaInfo
	if err := db.Order("version DESC").Take(&info).Error; err != nil {
		return 0, nil
	}
	return info.Version, nil
}

// Migrate applies the registered steps where the stored version lags
// SchemaVersion. Currently there are none; the mechanism exists so a
// future step only has to append to the list.
func (sm *SchemaManager) Migrate() error {
	db, err := sm.dm.DB()
	if err != nil {
		return err
	}
	stored, err := sm.Version()
	if err != nil {
		return err
	}
	for _, step := range migrations {
		if step.Version <= stored {
			continue
		}
		if err := step.Apply(db); err != nil {
			return &ExecutionError{Op: fmt.Sprintf("migrate to v%d", step.Version), Err: err}
		}
		row := models.SchemaInfo{Version: step.Version, AppliedAt: time.Now()}
		if err := db.Create(&row).Error; err != nil {
			return &ExecutionError{Op: fmt.Sprintf("record migration v%d", step.Version), Err: err}
		}
	}
	return nil
}

// Seed inserts the reference rows that are not present yet. Existing
// rows are never overwritten, and one bad row never aborts the rest:
// its failure is logged and seeding moves on.
func (sm *SchemaManager) Seed(ds *refdata.Dataset) error {
	db, err := sm.dm.DB()
	if err != nil {
		return err
	}
	if ds == nil {
		return nil
	}

	for _, u := range ds.BusinessUnits {
		seedRow(db, "business_units", "code = ?", u.Code, &models.BusinessUnit{
			Code: u.Code, Name: u.Name, Active: u.Active,
		})
	}
	for _, e := range ds.Employees {
		seedRow(db, "employees", "id = ?", e.ID, &models.Employee{
			ID: e.ID, Name: e.Name, Role: e.Role,
			BusinessUnit: e.BusinessUnit, SupervisorID: e.SupervisorID, Active: e.Active,
		})
	}
	for _, cc := range ds.CostCodes {
		seedRow(db, "cost_codes", "code = ?", cc.Code, &models.CostCode{
			Code: cc.Code, Description: cc.Description, Category: cc.Category,
			Rate: cc.Rate, Billable: cc.Billable,
		})
	}
	for _, wt := range ds.WorkTypes {
		seedRow(db, "work_types", "id = ?", wt.ID, &models.WorkType{
			ID: wt.ID, Name: wt.Name, Multiplier: wt.Multiplier,
			MinHours: wt.MinHours, MaxHours: wt.MaxHours,
		})
	}
	for _, p := range ds.Projects {
		seedRow(db, "projects", "id = ?", p.ID, &models.Project{
			ID: p.ID, Name: p.Name, BusinessUnit: p.BusinessUnit,
			ContractType: p.ContractType, Status: p.Status,
			StartDate: p.StartDate, EndDate: p.EndDate,
		})
		for seq, j := range p.Jobs {
			seedRow(db, "jobs", "id = ?", j.ID, &models.Job{
				ID: j.ID, ProjectID: p.ID, Name: j.Name, Seq: seq,
			})
			for woSeq, wo := range j.WorkOrders {
				seedRow(db, "work_orders", "id = ?", wo.ID, &models.WorkOrder{
					ID: wo.ID, JobID: j.ID, Description: wo.Description,
					CostCode: wo.CostCode, Priority: wo.Priority, Status: wo.Status, Seq: woSeq,
				})
			}
		}
	}
	return nil
}

// seedRow inserts record unless a row with that primary key exists.
// Failures are absorbed: reference seeding must never abort on one row.
func seedRow(db *gorm.DB, table, keyQuery string, key string, record any) {
	var count int64
	if err := db.Table(table).Where(keyQuery, key).Count(&count).Error; err != nil {
		log.Printf("seed %s %s: existence check failed: %v", table, key, err)
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(record).Error; err != nil {
		log.Printf("seed %s %s: insert failed: %v", table, key, err)
	}
}
