package dto

import "time"

// ConvertRequest represents the API request for converting a value to a duration.
// Value is a string so that the full 64-bit range survives JSON decoding.
type ConvertRequest struct {
	Value string `json:"value" binding:"required"`
	Unit  string `json:"unit" binding:"required"`
}

// ShiftRequest represents the API request for moving an instant by a duration
type ShiftRequest struct {
	Value string     `json:"value" binding:"required"`
	Unit  string     `json:"unit" binding:"required"`
	From  *time.Time `json:"from,omitempty"`
}

// ConvertResponse represents the API response for a converted duration
type ConvertResponse struct {
	Value       int64  `json:"value"`
	Unit        string `json:"unit"`
	Nanoseconds int64  `json:"nanoseconds"`
	Duration    string `json:"duration"`
}

// ShiftResponse represents the API response for a shifted instant
type ShiftResponse struct {
	ConvertResponse
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// UnitResponse describes one supported unit
type UnitResponse struct {
	Unit        string `json:"unit"`
	Nanoseconds int64  `json:"nanoseconds"`
}

// HealthResponse represents the API response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
