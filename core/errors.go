package core

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// InitializationError reports an operation attempted before the store
// was initialized (or after it was closed).
type InitializationError struct {
	Op string
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("store not initialized: %s", e.Op)
}

// ExecutionError wraps a failed statement or mutation.
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ConstraintError is an ExecutionError whose cause was a uniqueness or
// referential violation reported by the store. Distinguishing it from a
// generic execution failure is an enhancement; callers that only match
// ExecutionError keep working via Unwrap.
type ConstraintError struct {
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violated on %s: %v", e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// wrapWriteError classifies a gorm write failure. Requires the gorm
// connection to be opened with TranslateError so driver-specific
// duplicate/FK errors surface as gorm sentinels.
func wrapWriteError(op, table string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Table: table, Err: err}
	}
	return &ExecutionError{Op: op, Err: err}
}
