package usecase

import (
	"context"
	"time"
)

// ConvertRequest is a value and a unit name as received from a client
type ConvertRequest struct {
	Value string
	Unit  string
}

// ConvertResult is a value converted to nanoseconds
type ConvertResult struct {
	Value       int64
	Unit        string // canonical unit name
	Duration    time.Duration
	Nanoseconds int64
}

// ShiftRequest asks for a point in time moved by a value in some unit
type ShiftRequest struct {
	Value string
	Unit  string
	From  *time.Time // defaults to the current time when nil
}

// ShiftResult holds the original and the shifted instant
type ShiftResult struct {
	ConvertResult
	From time.Time
	To   time.Time
}

// UnitInfo describes one supported unit
type UnitInfo struct {
	Name        string
	Nanoseconds int64
}

// ConversionUseCase defines the duration conversion operations
type ConversionUseCase interface {
	// Convert parses the request and converts the value to a duration
	//
	// Possible errors:
	// - ErrInvalidValue: If the value is not a base-10 integer
	// - ErrUnknownUnit: If the unit name is not supported
	// - ErrOverflow: If the result does not fit in int64 nanoseconds
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)

	// Shift converts the value and adds it to the requested point in time
	//
	// Possible errors: those of Convert, and ErrInvalidTime if the shifted
	// instant leaves the range the time package can represent
	Shift(ctx context.Context, req ShiftRequest) (*ShiftResult, error)

	// Units lists the supported units in ascending order of scale
	Units(ctx context.Context) []UnitInfo
}
