package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack/core/models"
	"github.com/fieldtrack/fieldtrack/core/refdata"
)

func entryRow(overrides map[string]any) map[string]any {
	row := map[string]any{
		"employee_id":   "EMP001",
		"date":          "2026-08-14",
		"business_unit": "220000",
		"project_id":    "P1",
		"hours_worked":  8.0,
		"work_type":     "REGULAR",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func auditRecords(t *testing.T, store *Store, action string) []map[string]any {
	t.Helper()
	return store.GetAll("audit_records", map[string]any{
		"table_name": "timesheet_entries",
		"action":     action,
	}, QueryOptions{})
}

func TestInsertMaterializesBillableHours(t *testing.T) {
	store, _ := newTestStore(t)

	t.Run("billable cost code", func(t *testing.T) {
		row, err := store.Insert("timesheet_entries", entryRow(map[string]any{
			"cost_code": "LAB-CIV",
		}), "tester")
		require.NoError(t, err)
		assert.Equal(t, 8.0, row["billable_hours"])
	})

	t.Run("non-billable cost code", func(t *testing.T) {
		row, err := store.Insert("timesheet_entries", entryRow(map[string]any{
			"date":      "2026-08-15",
			"cost_code": "ADMIN",
		}), "tester")
		require.NoError(t, err)
		assert.Equal(t, 0.0, row["billable_hours"])
	})

	t.Run("no cost code", func(t *testing.T) {
		row, err := store.Insert("timesheet_entries", entryRow(map[string]any{
			"date": "2026-08-16",
		}), "tester")
		require.NoError(t, err)
		assert.Equal(t, 0.0, row["billable_hours"])
	})
}

func TestInsertEnforcesCompositeUniqueness(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Insert("timesheet_entries", entryRow(nil), "tester")
	require.NoError(t, err)

	_, err = store.Insert("timesheet_entries", entryRow(nil), "tester")
	require.Error(t, err)
	var constraint *ConstraintError
	assert.ErrorAs(t, err, &constraint)

	// a different slot on the same day is fine
	_, err = store.Insert("timesheet_entries", entryRow(map[string]any{
		"work_type": "OVERTIME",
	}), "tester")
	assert.NoError(t, err)
}

func TestInsertDropsUnknownColumns(t *testing.T) {
	store, _ := newTestStore(t)

	row, err := store.Insert("timesheet_entries", entryRow(map[string]any{
		"sneaky_column": "DROP TABLE timesheet_entries",
	}), "tester")
	require.NoError(t, err)
	_, present := row["sneaky_column"]
	assert.False(t, present)
}

func TestInsertLogsAuditRecord(t *testing.T) {
	store, _ := newTestStore(t)

	row, err := store.Insert("timesheet_entries", entryRow(nil), "payroll-clerk")
	require.NoError(t, err)
	require.NotNil(t, row["id"])

	records := auditRecords(t, store, models.AuditInsert)
	require.Len(t, records, 1)
	record := records[0]

	assert.EqualValues(t, "payroll-clerk", record["changed_by"])
	assert.Nil(t, record["old_data"])

	var snapshot map[string]any
	require.NoError(t, json.Unmarshal([]byte(record["new_data"].(string)), &snapshot))
	assert.EqualValues(t, "EMP001", snapshot["employee_id"])
	assert.EqualValues(t, 8, snapshot["hours_worked"])
}

func TestUpdateCapturesOldAndNewSnapshots(t *testing.T) {
	store, _ := newTestStore(t)

	inserted, err := store.Insert("timesheet_entries", entryRow(nil), "tester")
	require.NoError(t, err)
	id := inserted["id"]

	changed, err := store.Update("timesheet_entries", id, map[string]any{
		"hours_worked": 9.5,
		"description":  "stayed late for the pour",
	}, "supervisor")
	require.NoError(t, err)
	assert.True(t, changed)

	records := auditRecords(t, store, models.AuditUpdate)
	require.Len(t, records, 1)
	record := records[0]

	var oldSnap, newSnap map[string]any
	require.NoError(t, json.Unmarshal([]byte(record["old_data"].(string)), &oldSnap))
	require.NoError(t, json.Unmarshal([]byte(record["new_data"].(string)), &newSnap))

	assert.EqualValues(t, 8, oldSnap["hours_worked"])
	assert.EqualValues(t, 9.5, newSnap["hours_worked"])
	assert.EqualValues(t, "stayed late for the pour", newSnap["description"])
	// untouched fields carry over into the merged snapshot
	assert.EqualValues(t, "EMP001", newSnap["employee_id"])
	assert.EqualValues(t, "supervisor", record["changed_by"])
}

func TestUpdateRematerializesBillableHours(t *testing.T) {
	store, _ := newTestStore(t)

	inserted, err := store.Insert("timesheet_entries", entryRow(map[string]any{
		"cost_code": "LAB-CIV",
	}), "tester")
	require.NoError(t, err)
	require.Equal(t, 8.0, inserted["billable_hours"])
	id := inserted["id"]

	t.Run("hours change recomputes billable", func(t *testing.T) {
		changed, err := store.Update("timesheet_entries", id, map[string]any{
			"hours_worked": 10.0,
		}, "tester")
		require.NoError(t, err)
		assert.True(t, changed)

		row := store.GetByID("timesheet_entries", id)
		require.NotNil(t, row)
		assert.EqualValues(t, 10, row["hours_worked"])
		assert.EqualValues(t, 10, row["billable_hours"])
	})

	t.Run("switch to non-billable cost code zeroes it", func(t *testing.T) {
		_, err := store.Update("timesheet_entries", id, map[string]any{
			"cost_code": "ADMIN",
		}, "tester")
		require.NoError(t, err)

		row := store.GetByID("timesheet_entries", id)
		require.NotNil(t, row)
		assert.EqualValues(t, 0, row["billable_hours"])
	})

	t.Run("switch back restores the hours", func(t *testing.T) {
		_, err := store.Update("timesheet_entries", id, map[string]any{
			"cost_code": "LAB-CIV",
		}, "tester")
		require.NoError(t, err)

		row := store.GetByID("timesheet_entries", id)
		require.NotNil(t, row)
		assert.EqualValues(t, 10, row["billable_hours"])
	})

	t.Run("unrelated patch leaves it alone", func(t *testing.T) {
		_, err := store.Update("timesheet_entries", id, map[string]any{
			"description": "night shift",
		}, "tester")
		require.NoError(t, err)

		row := store.GetByID("timesheet_entries", id)
		require.NotNil(t, row)
		assert.EqualValues(t, 10, row["billable_hours"])
	})
}

func TestUpdateMissingRow(t *testing.T) {
	store, _ := newTestStore(t)

	changed, err := store.Update("timesheet_entries", 9999, map[string]any{
		"hours_worked": 1.0,
	}, "tester")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, auditRecords(t, store, models.AuditUpdate))
}

func TestDeleteLogsSnapshotBeforeRemoval(t *testing.T) {
	store, _ := newTestStore(t)

	inserted, err := store.Insert("timesheet_entries", entryRow(nil), "tester")
	require.NoError(t, err)
	id := inserted["id"]

	deleted, err := store.Delete("timesheet_entries", id, "admin")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, store.GetByID("timesheet_entries", id))

	records := auditRecords(t, store, models.AuditDelete)
	require.Len(t, records, 1)
	record := records[0]
	assert.Nil(t, record["new_data"])

	var oldSnap map[string]any
	require.NoError(t, json.Unmarshal([]byte(record["old_data"].(string)), &oldSnap))
	assert.EqualValues(t, "EMP001", oldSnap["employee_id"])
}

func TestGetAllDegradesInsteadOfFailing(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		store, _ := newTestStore(t)
		rows := store.GetAll("no_such_table", nil, QueryOptions{})
		assert.Empty(t, rows)
	})

	t.Run("uninitialized store", func(t *testing.T) {
		dm := NewSQLite(":memory:")
		store := NewStore(dm, refdata.NewLookup(refdata.Default()))
		rows := store.GetAll("timesheet_entries", nil, QueryOptions{})
		assert.Empty(t, rows)
		assert.Nil(t, store.GetByID("timesheet_entries", 1))
		totals := store.CalculateDailyTotals("EMP001", "2026-08-14")
		assert.EqualValues(t, 0, totals.EntryCount)
	})
}

func TestGetAllFiltersAndOrders(t *testing.T) {
	store, _ := newTestStore(t)

	for _, date := range []string{"2026-08-10", "2026-08-11", "2026-08-12"} {
		_, err := store.Insert("timesheet_entries", entryRow(map[string]any{"date": date}), "tester")
		require.NoError(t, err)
	}
	_, err := store.Insert("timesheet_entries", entryRow(map[string]any{
		"employee_id": "EMP002", "date": "2026-08-10",
	}), "tester")
	require.NoError(t, err)

	rows := store.GetAll("timesheet_entries", map[string]any{"employee_id": "EMP001"},
		QueryOptions{OrderBy: "date", Desc: true, Limit: 2})
	require.Len(t, rows, 2)
	assert.EqualValues(t, "2026-08-12", rows[0]["date"])
	assert.EqualValues(t, "2026-08-11", rows[1]["date"])

	// filters outside the whitelist are ignored, not interpolated
	rows = store.GetAll("timesheet_entries", map[string]any{"1=1; --": "x"}, QueryOptions{})
	assert.Len(t, rows, 4)
}

func TestExecRequiresInitialization(t *testing.T) {
	dm := NewSQLite(":memory:")
	store := NewStore(dm, refdata.NewLookup(refdata.Default()))

	_, err := store.Exec("DELETE FROM timesheet_entries")
	var initErr *InitializationError
	assert.ErrorAs(t, err, &initErr)

	// schema-creating statements may run first: they initialize
	_, err = store.Exec("CREATE TABLE scratch (id INTEGER PRIMARY KEY)")
	assert.NoError(t, err)
	t.Cleanup(func() { dm.Close() })
}

func TestExecReportsStatementFailure(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Exec("DELETE FROM not_a_table WHERE id = ?", 1)
	var execErr *ExecutionError
	assert.ErrorAs(t, err, &execErr)
}
