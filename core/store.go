package core

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fieldtrack/fieldtrack/core/models"
	"github.com/fieldtrack/fieldtrack/core/refdata"
)

// Store is the persistence service: generic CRUD over the registered
// tables plus the timesheet-specific queries. Every mutation emits one
// audit record; reads never error, they degrade to empty results.
type Store struct {
	dm    *DatabaseManager
	audit *AuditLogger
	ref   *refdata.Lookup
}

func NewStore(dm *DatabaseManager, ref *refdata.Lookup) *Store {
	return &Store{dm: dm, audit: NewAuditLogger(dm), ref: ref}
}

// QueryOptions tunes list queries. OrderBy must name a whitelisted
// column of the queried table or it is ignored.
type QueryOptions struct {
	OrderBy string
	Desc    bool
	Limit   int
	Offset  int
}

// Exec runs one parametrized statement and returns the affected row
// count. A schema-creating statement may run before Initialize (it
// triggers initialization); anything else against an unready store is
// an InitializationError.
func (s *Store) Exec(statement string, params ...any) (int64, error) {
	db, err := s.dm.DB()
	if err != nil {
		if !isSchemaStatement(statement) {
			return 0, err
		}
		if initErr := s.dm.Initialize(); initErr != nil {
			return 0, &ExecutionError{Op: "initialize for schema statement", Err: initErr}
		}
		db, err = s.dm.DB()
		if err != nil {
			return 0, err
		}
	}

	res := db.Exec(statement, params...)
	if res.Error != nil {
		return 0, &ExecutionError{Op: "execute statement", Err: res.Error}
	}
	return res.RowsAffected, nil
}

func isSchemaStatement(statement string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(statement)), "CREATE ")
}

// Insert writes one row and logs an INSERT audit record carrying the
// new snapshot. Record keys outside the table's column whitelist are
// dropped. Returns the stored record including a generated id.
func (s *Store) Insert(table string, record map[string]any, actor string) (map[string]any, error) {
	db, tbl, err := s.table(table)
	if err != nil {
		return nil, err
	}

	row := filterColumns(tbl, record)
	if table == "timesheet_entries" {
		s.prepareTimesheetRow(row)
		// map-based creates bypass gorm's timestamp tracking
		now := time.Now()
		row["created_at"] = now
		row["updated_at"] = now
	}

	if err := db.Table(tbl.Name).Create(row).Error; err != nil {
		return nil, wrapWriteError(fmt.Sprintf("insert into %s", tbl.Name), tbl.Name, err)
	}

	if _, ok := row[tbl.IDColumn]; !ok {
		if id, ok := s.lastInsertID(db); ok {
			row[tbl.IDColumn] = id
		}
	}

	s.audit.Append(tbl.Name, fmt.Sprintf("%v", row[tbl.IDColumn]), models.AuditInsert, nil, row, actor)
	return row, nil
}

// Update reads the existing row first (the pre-change snapshot is
// required), applies the whitelisted patch and logs an UPDATE audit
// record with old = pre-read row, new = merged row. Reports whether a
// row changed.
func (s *Store) Update(table string, id any, patch map[string]any, actor string) (bool, error) {
	db, tbl, err := s.table(table)
	if err != nil {
		return false, err
	}

	existing := map[string]any{}
	if err := db.Table(tbl.Name).Where(tbl.IDColumn+" = ?", id).Take(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, &ExecutionError{Op: fmt.Sprintf("read %s %v", tbl.Name, id), Err: err}
	}

	changes := filterColumns(tbl, patch)
	delete(changes, tbl.IDColumn)
	if len(changes) == 0 {
		return false, nil
	}
	if table == "timesheet_entries" {
		s.rematerializeBillable(existing, changes)
		changes["updated_at"] = time.Now()
	}

	res := db.Table(tbl.Name).Where(tbl.IDColumn+" = ?", id).Updates(changes)
	if res.Error != nil {
		return false, wrapWriteError(fmt.Sprintf("update %s %v", tbl.Name, id), tbl.Name, res.Error)
	}

	merged := map[string]any{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range changes {
		merged[k] = v
	}

	s.audit.Append(tbl.Name, fmt.Sprintf("%v", id), models.AuditUpdate, existing, merged, actor)
	return res.RowsAffected > 0, nil
}

// Delete reads the row for its audit snapshot, removes it and logs a
// DELETE audit record with a null new snapshot.
func (s *Store) Delete(table string, id any, actor string) (bool, error) {
	db, tbl, err := s.table(table)
	if err != nil {
		return false, err
	}

	existing := map[string]any{}
	if err := db.Table(tbl.Name).Where(tbl.IDColumn+" = ?", id).Take(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, &ExecutionError{Op: fmt.Sprintf("read %s %v", tbl.Name, id), Err: err}
	}

	res := db.Where(tbl.IDColumn+" = ?", id).Delete(tbl.Model())
	if res.Error != nil {
		return false, wrapWriteError(fmt.Sprintf("delete %s %v", tbl.Name, id), tbl.Name, res.Error)
	}

	s.audit.Append(tbl.Name, fmt.Sprintf("%v", id), models.AuditDelete, existing, nil, actor)
	return res.RowsAffected > 0, nil
}

// GetByID returns the row as a map, or nil when it is missing or the
// read fails (failures are logged, never returned).
func (s *Store) GetByID(table string, id any) map[string]any {
	db, tbl, err := s.table(table)
	if err != nil {
		log.Printf("getById %s %v: %v", table, id, err)
		return nil
	}

	row := map[string]any{}
	if err := db.Table(tbl.Name).Where(tbl.IDColumn+" = ?", id).Take(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("getById %s %v: %v", table, id, err)
		}
		return nil
	}
	return row
}

// GetAll lists rows matching the equality filters. Any failure degrades
// to an empty slice: listing is allowed to come back empty, writes are
// not allowed to fail silently.
func (s *Store) GetAll(table string, filters map[string]any, opts QueryOptions) []map[string]any {
	db, tbl, err := s.table(table)
	if err != nil {
		log.Printf("getAll %s: %v", table, err)
		return []map[string]any{}
	}

	query := db.Table(tbl.Name)
	for col, val := range filterColumns(tbl, filters) {
		query = query.Where(col+" = ?", val)
	}
	if opts.OrderBy != "" && tbl.HasColumn(opts.OrderBy) {
		dir := "ASC"
		if opts.Desc {
			dir = "DESC"
		}
		query = query.Order(opts.OrderBy + " " + dir)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	rows := []map[string]any{}
	if err := query.Find(&rows).Error; err != nil {
		log.Printf("getAll %s: %v", table, err)
		return []map[string]any{}
	}
	return rows
}

func (s *Store) HealthCheck() HealthStatus {
	return s.dm.HealthCheck()
}

func (s *Store) table(name string) (*gorm.DB, models.Table, error) {
	tbl, ok := models.Lookup(name)
	if !ok {
		return nil, models.Table{}, &ExecutionError{Op: "resolve table", Err: fmt.Errorf("unknown table %q", name)}
	}
	db, err := s.dm.DB()
	if err != nil {
		return nil, models.Table{}, err
	}
	return db, tbl, nil
}

// filterColumns keeps only whitelisted columns of the record.
func filterColumns(tbl models.Table, record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if tbl.HasColumn(k) {
			out[k] = v
		}
	}
	return out
}

// prepareTimesheetRow normalizes the optional slot columns to "" (the
// composite unique index must see comparable values, not NULLs) and
// materializes billable_hours from the cost code's billable flag.
func (s *Store) prepareTimesheetRow(row map[string]any) {
	for _, col := range []string{"job_id", "work_order_id", "work_type"} {
		if v, ok := row[col]; !ok || v == nil {
			row[col] = ""
		}
	}

	row["billable_hours"] = s.billableFor(row["cost_code"], toFloat(row["hours_worked"]))

	if v, ok := row["break_hours"]; !ok || v == nil {
		row["break_hours"] = 0.0
	}
}

// rematerializeBillable keeps the derived billable_hours column in step
// when a patch touches hours_worked or cost_code. Unchanged columns keep
// their stored values.
func (s *Store) rematerializeBillable(existing, changes map[string]any) {
	_, hoursChanged := changes["hours_worked"]
	_, codeChanged := changes["cost_code"]
	if !hoursChanged && !codeChanged {
		return
	}

	hours := toFloat(existing["hours_worked"])
	if v, ok := changes["hours_worked"]; ok {
		hours = toFloat(v)
	}
	code := existing["cost_code"]
	if v, ok := changes["cost_code"]; ok {
		code = v
	}
	changes["billable_hours"] = s.billableFor(code, hours)
}

func (s *Store) billableFor(costCode any, hours float64) float64 {
	code, ok := costCode.(string)
	if !ok || code == "" {
		return 0
	}
	if cc, found := s.ref.CostCode(code); found && cc.Billable {
		return hours
	}
	return 0
}

func (s *Store) lastInsertID(db *gorm.DB) (int64, bool) {
	stmt := "SELECT LAST_INSERT_ID()"
	if db.Dialector.Name() == "sqlite" {
		stmt = "SELECT last_insert_rowid()"
	}
	var id int64
	if err := db.Raw(stmt).Scan(&id).Error; err != nil {
		log.Printf("last insert id: %v", err)
		return 0, false
	}
	return id, true
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
