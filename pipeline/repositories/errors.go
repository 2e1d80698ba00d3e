package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrEmptyUpdate rejects an update whose field set is empty once the
// primary key is pulled out. Silently ignoring it would hide caller bugs.
var ErrEmptyUpdate = errors.New("update carries no fields besides the key")

// ErrNoRowsAffected flags an insert the store silently dropped.
// After a successful acceptance check this is a store contract violation.
var ErrNoRowsAffected = errors.New("insert affected no rows")

// IntegrityError is a foreign key or uniqueness violation at write time.
// It aborts the transaction of the offending match and nothing else.
type IntegrityError struct {
	Table string
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation on %s: %v", e.Table, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// TimeoutError is a store call that exceeded the caller supplied deadline.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("store operation %s timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

func (e *TimeoutError) Timeout() bool {
	return true
}

// translateError maps gorm errors into the gateway taxonomy.
func translateError(op string, table string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Err: err}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &IntegrityError{Table: table, Err: err}
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
