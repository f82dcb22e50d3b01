package numduration

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a fixed granularity of time with an exact scale factor to nanoseconds
type Unit uint8

// Supported units, in ascending order of scale
const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

// Day and week are not defined by the time package
const (
	day  = 24 * time.Hour
	week = 7 * day
)

var scales = [...]time.Duration{
	Nanosecond:  time.Nanosecond,
	Microsecond: time.Microsecond,
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         day,
	Week:        week,
}

var names = [...]string{
	Nanosecond:  "nanosecond",
	Microsecond: "microsecond",
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
}

// aliases maps every accepted spelling of a unit name, lowercased
var aliases = map[string]Unit{
	"ns": Nanosecond, "nsec": Nanosecond,
	"us": Microsecond, "µs": Microsecond, "μs": Microsecond, "usec": Microsecond,
	"ms": Millisecond, "msec": Millisecond,
	"s": Second, "sec": Second, "secs": Second,
	"m": Minute, "min": Minute, "mins": Minute,
	"h": Hour, "hr": Hour, "hrs": Hour,
	"d": Day,
	"w": Week, "wk": Week, "wks": Week,
}

func init() {
	for u, n := range names {
		aliases[n] = Unit(u)
		aliases[n+"s"] = Unit(u)
	}
}

// Units returns all supported units in ascending order of scale
func Units() []Unit {
	units := make([]Unit, len(names))
	for i := range units {
		units[i] = Unit(i)
	}
	return units
}

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	return int(u) < len(scales)
}

// Scale returns the number of nanoseconds in one u, or 0 for an invalid unit
func (u Unit) Scale() time.Duration {
	if !u.Valid() {
		return 0
	}
	return scales[u]
}

// String returns the singular lowercase name of the unit
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return names[u]
}

// ParseUnit returns the unit with the given name. Singular and plural names and
// the common abbreviations (ns, us, ms, s, m, h, d, w) are accepted, ignoring
// case and surrounding whitespace.
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	u, ok := aliases[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}
