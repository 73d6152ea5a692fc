package timesheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack/core"
	"github.com/fieldtrack/fieldtrack/core/refdata"
	"github.com/fieldtrack/fieldtrack/validation"
)

func newTestRouter(t *testing.T) (*gin.Engine, *core.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dm := core.NewSQLite(":memory:")
	require.NoError(t, dm.Initialize())
	t.Cleanup(func() { dm.Close() })

	sm := core.NewSchemaManager(dm)
	require.NoError(t, sm.CreateSchema())
	require.NoError(t, sm.Seed(refdata.Default()))

	lookup := refdata.NewLookup(refdata.Default())
	store := core.NewStore(dm, lookup)

	r := gin.New()
	Register(r.Group("/api/v1"), store, validation.NewEngine(lookup))
	return r, store
}

func insertEntry(t *testing.T, store *core.Store, overrides map[string]any) map[string]any {
	t.Helper()
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
	inserted, err := store.Insert("timesheet_entries", row, "tester")
	require.NoError(t, err)
	return inserted
}

func putJSON(t *testing.T, r *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateRejectsOutOfRangeHours(t *testing.T) {
	r, store := newTestRouter(t)
	inserted := insertEntry(t, store, nil)
	path := fmt.Sprintf("/api/v1/timesheets/%v", inserted["id"])

	w := putJSON(t, r, path, map[string]any{"hoursWorked": 999.0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Hours Worked cannot exceed 24")

	// the row must be untouched
	row := store.GetByID("timesheet_entries", inserted["id"])
	require.NotNil(t, row)
	assert.EqualValues(t, 8, row["hours_worked"])
}

func TestUpdateRejectsNegativeHours(t *testing.T) {
	r, store := newTestRouter(t)
	inserted := insertEntry(t, store, nil)
	path := fmt.Sprintf("/api/v1/timesheets/%v", inserted["id"])

	w := putJSON(t, r, path, map[string]any{"hoursWorked": -1.0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Hours Worked cannot be negative")
}

func TestUpdateSanitizesAndRecomputesBillable(t *testing.T) {
	r, store := newTestRouter(t)
	inserted := insertEntry(t, store, map[string]any{"cost_code": "LAB-CIV"})
	require.EqualValues(t, 8, inserted["billable_hours"])
	path := fmt.Sprintf("/api/v1/timesheets/%v", inserted["id"])

	w := putJSON(t, r, path, map[string]any{"hoursWorked": 10.0, "breakHours": 9.0})
	assert.Equal(t, http.StatusOK, w.Code)

	row := store.GetByID("timesheet_entries", inserted["id"])
	require.NotNil(t, row)
	assert.EqualValues(t, 10, row["hours_worked"])
	assert.EqualValues(t, 10, row["billable_hours"])
	// break hours above range clamp instead of erroring
	assert.EqualValues(t, 4, row["break_hours"])
}

func TestUpdateCarriesWarningsThrough(t *testing.T) {
	r, store := newTestRouter(t)
	inserted := insertEntry(t, store, nil)
	path := fmt.Sprintf("/api/v1/timesheets/%v", inserted["id"])

	w := putJSON(t, r, path, map[string]any{"hoursWorked": 17.0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hours Worked exceeds 16 hours")
}
