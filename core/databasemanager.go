package core

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// DatabaseManager owns the shared gorm connection and its lifecycle.
// Initialize must run before any statement other than schema creation.
type DatabaseManager struct {
	db          *gorm.DB
	dialector   gorm.Dialector
	logLevel    LogLevel
	maxConns    int
	initialized bool
}

// NewMySQL prepares a manager for a mysql DSN (host/user/pass/schema,
// parseTime=true). The pool is not opened until Initialize.
func NewMySQL(dsn string, maxConnection int) *DatabaseManager {
	return &DatabaseManager{
		dialector: mysql.Open(dsn),
		logLevel:  LogLevelWarn,
		maxConns:  maxConnection,
	}
}

// NewSQLite prepares a manager for a sqlite file (or ":memory:").
// Single connection: in-memory databases vanish per-connection, and
// sqlite only supports one writer anyway.
func NewSQLite(path string) *DatabaseManager {
	return &DatabaseManager{
		dialector: sqlite.Open(path + "?_foreign_keys=on"),
		logLevel:  LogLevelSilent,
		maxConns:  1,
	}
}

func (dm *DatabaseManager) SetLogLevel(level LogLevel) {
	dm.logLevel = level
}

func (dm *DatabaseManager) Initialize() error {
	if dm.initialized {
		return nil
	}

	gormLogLevel := logger.Silent
	switch dm.logLevel {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	}

	// Associations stay declarative: table creation order must not
	// matter, and optional slot columns hold "" which no FK accepts.
	db, err := gorm.Open(dm.dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(gormLogLevel),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(dm.maxConns)
	sqlDB.SetMaxIdleConns(dm.maxConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping pool: %w", err)
	}

	dm.db = db
	dm.initialized = true
	return nil
}

// DB returns the shared connection, or an InitializationError when the
// manager has not been initialized.
func (dm *DatabaseManager) DB() (*gorm.DB, error) {
	if !dm.initialized || dm.db == nil {
		return nil, &InitializationError{Op: "get connection"}
	}
	return dm.db, nil
}

func (dm *DatabaseManager) Exec(fn func(db *gorm.DB) error) error {
	db, err := dm.DB()
	if err != nil {
		return err
	}
	return fn(db)
}

func (dm *DatabaseManager) Close() error {
	if !dm.initialized || dm.db == nil {
		return nil
	}
	sqlDB, err := dm.db.DB()
	if err != nil {
		return err
	}
	dm.initialized = false
	dm.db = nil
	return sqlDB.Close()
}

type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthCheck runs a trivial query. Never returns an error: an unready
// or failing store reports Healthy=false.
func (dm *DatabaseManager) HealthCheck() HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	db, err := dm.DB()
	if err != nil {
		return status
	}
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return status
	}
	status.Healthy = one == 1
	return status
}
