package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack/core/models"
	"github.com/fieldtrack/fieldtrack/core/refdata"
)

func newTestManager(t *testing.T) *DatabaseManager {
	t.Helper()
	dm := NewSQLite(":memory:")
	require.NoError(t, dm.Initialize())
	t.Cleanup(func() { dm.Close() })
	return dm
}

func newTestStore(t *testing.T) (*Store, *DatabaseManager) {
	t.Helper()
	dm := newTestManager(t)
	sm := NewSchemaManager(dm)
	require.NoError(t, sm.CreateSchema())
	require.NoError(t, sm.Seed(refdata.Default()))
	return NewStore(dm, refdata.NewLookup(refdata.Default())), dm
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	dm := newTestManager(t)
	sm := NewSchemaManager(dm)

	require.NoError(t, sm.CreateSchema())
	require.NoError(t, sm.CreateSchema())

	db, err := dm.DB()
	require.NoError(t, err)
	for _, table := range models.All() {
		assert.True(t, db.Migrator().HasTable(table.Model()), table.Name)
	}

	version, err := sm.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

func TestSeedNeverOverwrites(t *testing.T) {
	dm := newTestManager(t)
	sm := NewSchemaManager(dm)
	require.NoError(t, sm.CreateSchema())

	ds := refdata.Default()
	require.NoError(t, sm.Seed(ds))

	// change a name and seed again; the stored row must keep its
	// original value and stay unique
	ds.BusinessUnits[0].Name = "Tampered"
	require.NoError(t, sm.Seed(ds))

	db, err := dm.DB()
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.BusinessUnit{}).Where("code = ?", "220000").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var unit models.BusinessUnit
	require.NoError(t, db.Where("code = ?", "220000").Take(&unit).Error)
	assert.Equal(t, "Civil Construction", unit.Name)
}

func TestSeedSkipsBadRowAndContinues(t *testing.T) {
	dm := newTestManager(t)
	sm := NewSchemaManager(dm)
	require.NoError(t, sm.CreateSchema())

	ds := &refdata.Dataset{
		BusinessUnits: []refdata.BusinessUnit{
			{Code: "220000", Name: "Civil Construction", Active: true},
		},
		Employees: []refdata.Employee{
			{ID: "EMP001", Name: "First", BusinessUnit: "220000", Active: true},
			{ID: "EMP001", Name: "Duplicate Of First", BusinessUnit: "220000", Active: true},
			{ID: "EMP002", Name: "Second", BusinessUnit: "220000", Active: true},
		},
	}
	require.NoError(t, sm.Seed(ds))

	db, err := dm.DB()
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestMigrateIsANoOpAtCurrentVersion(t *testing.T) {
	dm := newTestManager(t)
	sm := NewSchemaManager(dm)
	require.NoError(t, sm.CreateSchema())
	require.NoError(t, sm.Migrate())

	version, err := sm.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

func TestUninitializedManager(t *testing.T) {
	dm := NewSQLite(":memory:")

	_, err := dm.DB()
	var initErr *InitializationError
	assert.ErrorAs(t, err, &initErr)

	status := dm.HealthCheck()
	assert.False(t, status.Healthy)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestHealthCheck(t *testing.T) {
	dm := newTestManager(t)
	status := dm.HealthCheck()
	assert.True(t, status.Healthy)
}
