package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// HandleBindingError translates a gin binding failure into the failure
// envelope, with one field entry per offending struct field when the
// underlying error came from the validator.
func HandleBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{
				Message: formatValidationError(fe),
				Path:    jsonFieldName(fe),
			})
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("validation failed", fields...))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + e.Param()
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " is invalid"
	}
}

// jsonFieldName lower-cases the first rune of the struct field name, which
// matches the camelCase json tags used across the DTOs.
func jsonFieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}
