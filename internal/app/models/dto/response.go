package dto

import "github.com/yigit/schoolhub/internal/pkg/apperrors"

// Success responses are flat envelopes: {"success": true, ...payload}.
// Controllers build them with H so payload keys sit at the top level next to
// the success flag, exactly as clients of the original API expect.
type H = map[string]any

// OK builds a success envelope with the given payload keys.
func OK(payload H) H {
	out := H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// ErrorResponse is the failure envelope:
// {"success": false, "message": "...", "errors": [{"message", "path"}]}
type ErrorResponse struct {
	Success bool                   `json:"success" example:"false"`
	Message string                 `json:"message" example:"session overlaps an existing one"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates a failure envelope.
func NewErrorResponse(message string, errs ...apperrors.FieldError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}
