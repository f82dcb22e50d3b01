package error

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/numduration"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidValue.Error() != "value must be an integer" {
		t.Errorf("ErrInvalidValue has unexpected message: %s", ErrInvalidValue.Error())
	}
	if ErrOverflow != numduration.ErrOverflow {
		t.Errorf("ErrOverflow is not the library overflow error")
	}
	if ErrUnknownUnit != numduration.ErrUnknownUnit {
		t.Errorf("ErrUnknownUnit is not the library unknown unit error")
	}
}

func TestErrorCode(t *testing.T) {
	_, overflowErr := numduration.Weeks(int64(1) << 62)
	_, unitErr := numduration.ParseUnit("fortnight")

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidValue", ErrInvalidValue, 4001},
		{"UnknownUnit", ErrUnknownUnit, 4002},
		{"Overflow", ErrOverflow, 4003},
		{"InvalidRequest", ErrInvalidRequest, 4004},
		{"InvalidTime", ErrInvalidTime, 4005},
		{"LibraryOverflow", overflowErr, 4003},
		{"LibraryUnknownUnit", unitErr, 4002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidValue), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidValue", ErrInvalidValue, http.StatusBadRequest},
		{"UnknownUnit", ErrUnknownUnit, http.StatusBadRequest},
		{"InvalidRequest", ErrInvalidRequest, http.StatusBadRequest},
		{"InvalidTime", ErrInvalidTime, http.StatusBadRequest},
		{"Overflow", ErrOverflow, http.StatusUnprocessableEntity},
		{"Internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := HTTPStatus(tc.err); status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestConversionError(t *testing.T) {
	err := NewConversionError("12", "fortnight", ErrUnknownUnit)
	if err == nil {
		t.Fatal("NewConversionError returned nil")
	}

	expectedErrMsg := `cannot convert "12" "fortnight": unknown duration unit`
	if err.Error() != expectedErrMsg {
		t.Errorf("ConversionError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("errors.Is(err, ErrUnknownUnit) = false, want true")
	}

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("errors.As failed: not a *ConversionError")
	}

	fields := convErr.LogFields()
	if fields["error_code"] != CodeUnknownUnit {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeUnknownUnit)
	}
	if fields["unit"] != "fortnight" {
		t.Errorf("LogFields()[unit] = %v, want fortnight", fields["unit"])
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsOverflowError(ErrInvalidValue) {
		t.Errorf("IsOverflowError(ErrInvalidValue) = true, want false")
	}

	wrappedOverflow := NewConversionError("1", "week", fmt.Errorf("wrapped: %w", ErrOverflow))
	if !IsOverflowError(wrappedOverflow) {
		t.Errorf("IsOverflowError(wrappedOverflow) = false, want true")
	}

	if !IsClientError(wrappedOverflow) {
		t.Errorf("IsClientError(wrappedOverflow) = false, want true")
	}
	if IsClientError(ErrInternalServer) {
		t.Errorf("IsClientError(ErrInternalServer) = true, want false")
	}
}

func TestCodeName(t *testing.T) {
	if name := CodeName(CodeOverflow); name != "overflow" {
		t.Errorf("CodeName(CodeOverflow) = %s, want overflow", name)
	}
	if name := CodeName(4999); name != "internal" {
		t.Errorf("CodeName(4999) = %s, want internal", name)
	}
}

func TestConversionError_OverflowLogFields(t *testing.T) {
	_, cause := numduration.Weeks(int64(math.MaxInt64))
	err := NewConversionError("9223372036854775807", "wk", cause)

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("errors.As failed: not a *ConversionError")
	}

	fields := convErr.LogFields()
	if fields["error_code"] != CodeOverflow {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeOverflow)
	}
	if fields["unit"] != "wk" {
		t.Errorf("LogFields()[unit] = %v, want wk", fields["unit"])
	}
	if fields["overflow_unit"] != "week" {
		t.Errorf("LogFields()[overflow_unit] = %v, want week", fields["overflow_unit"])
	}
	if fields["overflow_value"] != "9223372036854775807" {
		t.Errorf("LogFields()[overflow_value] = %v, want 9223372036854775807", fields["overflow_value"])
	}
}
