package core

import "time"

// TimeProvider abstracts the clock for the domain
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
