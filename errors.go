package numduration

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value scaled to nanoseconds does not fit in
	// a time.Duration
	ErrOverflow = errors.New("duration overflows int64 nanoseconds")

	// ErrUnknownUnit is returned for a unit name or value that is not supported
	ErrUnknownUnit = errors.New("unknown duration unit")
)

// OverflowError records the value and unit of a conversion that overflowed
type OverflowError struct {
	Value string
	Unit  Unit
}

// Error implements the error interface
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Value, e.Unit, ErrOverflow)
}

// Unwrap returns ErrOverflow
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Is checks if the target error is an ErrOverflow
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// LogFields returns a map of fields for structured logging. Keys are prefixed
// so they can be merged into the fields of a wrapping error.
func (e *OverflowError) LogFields() map[string]any {
	return map[string]any{
		"overflow_value": e.Value,
		"overflow_unit":  e.Unit.String(),
	}
}

// IsOverflow checks if the error is an overflow error
func IsOverflow(err error) bool {
	return errors.Is(err, ErrOverflow)
}
