package numduration

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Count is an integer awaiting a unit, for call sites that read better as
// numduration.Of(n).Hours() than numduration.Hours(n).
type Count[T constraints.Integer] struct {
	v T
}

// Of wraps v as a Count
func Of[T constraints.Integer](v T) Count[T] {
	return Count[T]{v: v}
}

// Value returns the wrapped integer
func (c Count[T]) Value() T {
	return c.v
}

// In converts the count to a time.Duration in unit u
func (c Count[T]) In(u Unit) (time.Duration, error) {
	return Convert(c.v, u)
}

func (c Count[T]) Nanoseconds() (time.Duration, error)  { return Convert(c.v, Nanosecond) }
func (c Count[T]) Microseconds() (time.Duration, error) { return Convert(c.v, Microsecond) }
func (c Count[T]) Milliseconds() (time.Duration, error) { return Convert(c.v, Millisecond) }
func (c Count[T]) Seconds() (time.Duration, error)      { return Convert(c.v, Second) }
func (c Count[T]) Minutes() (time.Duration, error)      { return Convert(c.v, Minute) }
func (c Count[T]) Hours() (time.Duration, error)        { return Convert(c.v, Hour) }
func (c Count[T]) Days() (time.Duration, error)         { return Convert(c.v, Day) }
func (c Count[T]) Weeks() (time.Duration, error)        { return Convert(c.v, Week) }
