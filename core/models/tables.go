package models

// Table describes one persisted table for the generic store: the model
// prototype, its primary-key column and the explicit column whitelist
// dynamic inserts/updates are allowed to touch. Record keys outside the
// whitelist are dropped, never interpolated.
type Table struct {
	Name     string
	IDColumn string
	Model    func() any
	Columns  []string
}

// HasColumn reports whether name is the primary key or a whitelisted
// column of the table.
func (t Table) HasColumn(name string) bool {
	if name == t.IDColumn {
		return true
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// All lists every table in dependency order; schema creation walks it
// front to back.
func All() []Table {
	return []Table{
		{
			Name:     "business_units",
			IDColumn: "code",
			Model:    func() any { return &BusinessUnit{} },
			Columns:  []string{"code", "name", "active"},
		},
		{
			Name:     "employees",
			IDColumn: "id",
			Model:    func() any { return &Employee{} },
			Columns:  []string{"id", "name", "role", "business_unit", "supervisor_id", "active"},
		},
		{
			Name:     "projects",
			IDColumn: "id",
			Model:    func() any { return &Project{} },
			Columns:  []string{"id", "name", "business_unit", "contract_type", "status", "start_date", "end_date"},
		},
		{
			Name:     "jobs",
			IDColumn: "id",
			Model:    func() any { return &Job{} },
			Columns:  []string{"id", "project_id", "name", "seq"},
		},
		{
			Name:     "work_orders",
			IDColumn: "id",
			Model:    func() any { return &WorkOrder{} },
			Columns:  []string{"id", "job_id", "description", "cost_code", "priority", "status", "seq"},
		},
		{
			Name:     "cost_codes",
			IDColumn: "code",
			Model:    func() any { return &CostCode{} },
			Columns:  []string{"code", "description", "category", "rate", "billable"},
		},
		{
			Name:     "work_types",
			IDColumn: "id",
			Model:    func() any { return &WorkType{} },
			Columns:  []string{"id", "name", "multiplier", "min_hours", "max_hours"},
		},
		{
			Name:     "timesheet_entries",
			IDColumn: "id",
			Model:    func() any { return &TimesheetEntry{} },
			Columns: []string{
				"employee_id", "date", "business_unit", "project_id", "job_id",
				"work_order_id", "work_type", "cost_code", "hours_worked",
				"break_hours", "billable_hours", "description", "approved",
				"approved_by", "approved_at", "rejected", "rejection_reason",
			},
		},
		{
			Name:     "audit_records",
			IDColumn: "id",
			Model:    func() any { return &AuditRecord{} },
			Columns:  []string{"id", "table_name", "record_id", "action", "old_data", "new_data", "changed_by"},
		},
		{
			Name:     "schema_info",
			IDColumn: "version",
			Model:    func() any { return &SchemaInfo{} },
			Columns:  []string{"version", "applied_at"},
		},
	}
}

// Lookup returns the table descriptor for name.
func Lookup(name string) (Table, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
