package error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/numduration"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidValue   = 4001
	CodeUnknownUnit    = 4002
	CodeOverflow       = 4003
	CodeInvalidRequest = 4004
	CodeInvalidTime    = 4005

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidValue is returned when the value is not a base-10 integer
	ErrInvalidValue = errors.New("value must be an integer")

	// ErrUnknownUnit is returned when the unit name is not supported
	ErrUnknownUnit = numduration.ErrUnknownUnit

	// ErrOverflow is returned when the converted duration does not fit in int64 nanoseconds
	ErrOverflow = numduration.ErrOverflow

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidTime is returned when a point in time cannot be shifted by the duration
	ErrInvalidTime = errors.New("invalid point in time")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidValue):
		return CodeInvalidValue
	case errors.Is(err, ErrUnknownUnit):
		return CodeUnknownUnit
	case errors.Is(err, ErrOverflow):
		return CodeOverflow
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidTime):
		return CodeInvalidTime
	default:
		return CodeInternalServer
	}
}

var codeNames = map[int]string{
	CodeInvalidValue:   "invalid_value",
	CodeUnknownUnit:    "unknown_unit",
	CodeOverflow:       "overflow",
	CodeInvalidRequest: "invalid_request",
	CodeInvalidTime:    "invalid_time",
	CodeInternalServer: "internal",
}

// CodeName returns the short machine-readable name of an error code
func CodeName(code int) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return codeNames[CodeInternalServer]
}

// HTTPStatus maps known errors to an HTTP status code
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeInvalidValue, CodeUnknownUnit, CodeInvalidRequest, CodeInvalidTime:
		return http.StatusBadRequest
	case CodeOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ConversionError represents a failed conversion request
type ConversionError struct {
	Value string
	Unit  string
	Err   error
}

// Error implements the error interface for ConversionError
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q %q: %v", e.Value, e.Unit, e.Err)
}

// Unwrap returns the underlying error
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging, including those of
// an underlying *numduration.OverflowError
func (e *ConversionError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "conversion_error",
		"value":      e.Value,
		"unit":       e.Unit,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}

	var overflow *numduration.OverflowError
	if errors.As(e.Err, &overflow) {
		for k, v := range overflow.LogFields() {
			fields[k] = v
		}
	}

	return fields
}

// NewConversionError creates a detailed conversion error
func NewConversionError(value, unit string, err error) error {
	return &ConversionError{
		Value: value,
		Unit:  unit,
		Err:   err,
	}
}

// IsOverflowError checks if the error is an overflow error
func IsOverflowError(err error) bool {
	return errors.Is(err, ErrOverflow)
}

// IsClientError checks if the error was caused by the request rather than the server
func IsClientError(err error) bool {
	return ErrorCode(err) < CodeInternalServer
}
