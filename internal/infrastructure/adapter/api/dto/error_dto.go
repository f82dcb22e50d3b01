package dto

import domainerr "github.com/amirhossein-jamali/numduration/internal/domain/error"

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse fills in the error name for code
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Error:   domainerr.CodeName(code),
		Message: message,
	}
}
