// Package numduration builds time.Duration values from integers of any width.
//
//	d, err := numduration.Hours(36)         // 36h0m0s
//	next := time.Now().Add(numduration.MustDays(1))
//
// A result that does not fit in a time.Duration is never truncated or clamped:
// the conversion fails with an error matching ErrOverflow, and the Must forms
// panic with that error.
package numduration

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// Convert returns v units as a time.Duration. It fails with ErrUnknownUnit if
// u is not a supported unit and with ErrOverflow if v*u.Scale() nanoseconds is
// outside the range of time.Duration.
func Convert[T constraints.Integer](v T, u Unit) (time.Duration, error) {
	if !u.Valid() {
		return 0, ErrUnknownUnit
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, overflow(v, u)
	}
	scale := int64(u.Scale())
	if n > math.MaxInt64/scale || n < math.MinInt64/scale {
		return 0, overflow(v, u)
	}
	return time.Duration(n * scale), nil
}

// MustConvert is like Convert but panics on error
func MustConvert[T constraints.Integer](v T, u Unit) time.Duration {
	d, err := Convert(v, u)
	if err != nil {
		panic(err)
	}
	return d
}

// toInt64 widens v to int64, reporting false if it does not fit
func toInt64[T constraints.Integer](v T) (int64, bool) {
	if v < 0 {
		return int64(v), true
	}
	if uint64(v) > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func overflow[T constraints.Integer](v T, u Unit) error {
	var s string
	if v < 0 {
		s = strconv.FormatInt(int64(v), 10)
	} else {
		s = strconv.FormatUint(uint64(v), 10)
	}
	return &OverflowError{Value: s, Unit: u}
}

// Nanoseconds returns v nanoseconds as a time.Duration
func Nanoseconds[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Nanosecond)
}

// Microseconds returns v microseconds as a time.Duration
func Microseconds[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Microsecond)
}

// Milliseconds returns v milliseconds as a time.Duration
func Milliseconds[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Millisecond)
}

// Seconds returns v seconds as a time.Duration
func Seconds[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Second)
}

// Minutes returns v minutes as a time.Duration
func Minutes[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Minute)
}

// Hours returns v hours as a time.Duration
func Hours[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Hour)
}

// Days returns v days of 24 hours as a time.Duration
func Days[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Day)
}

// Weeks returns v weeks of 7 days as a time.Duration
func Weeks[T constraints.Integer](v T) (time.Duration, error) {
	return Convert(v, Week)
}

// MustNanoseconds is like Nanoseconds but panics on overflow
func MustNanoseconds[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Nanosecond)
}

// MustMicroseconds is like Microseconds but panics on overflow
func MustMicroseconds[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Microsecond)
}

// MustMilliseconds is like Milliseconds but panics on overflow
func MustMilliseconds[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Millisecond)
}

// MustSeconds is like Seconds but panics on overflow
func MustSeconds[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Second)
}

// MustMinutes is like Minutes but panics on overflow
func MustMinutes[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Minute)
}

// MustHours is like Hours but panics on overflow
func MustHours[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Hour)
}

// MustDays is like Days but panics on overflow
func MustDays[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Day)
}

// MustWeeks is like Weeks but panics on overflow
func MustWeeks[T constraints.Integer](v T) time.Duration {
	return MustConvert(v, Week)
}
