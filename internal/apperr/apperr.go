// Package apperr is the failure taxonomy shared by services and handlers:
// validation failures carry an ordered field list, constraint violations
// mark writes the store rejected, ErrNotFound marks an absent row, and
// anything else is an opaque store failure.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-material-trade/pkg/validator"
)

// ErrNotFound signals that no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports every violated input rule for a request in one
// list. The caller must respond without attempting the store operation.
type ValidationError struct {
	Fields []validator.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ConstraintError is a write the store rejected: a referenced id that does
// not exist, or a unique field collision.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return e.Err.Error() }

func (e *ConstraintError) Unwrap() error { return e.Err }

// FromStore maps a persistence failure onto the taxonomy. Relies on the
// gorm error translation configured at connect time.
func FromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Err: err}
	default:
		return err
	}
}
