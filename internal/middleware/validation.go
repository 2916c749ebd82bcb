package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
)

// HandleBindingError renders a JSON binding or validation failure as a 400
// with per-field messages when the cause is a validator error.
func HandleBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request")

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, formatFieldError(fieldErr))
		}
		errorDetail = errorDetail.WithDetails(messages)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field()[:1]) + e.Field()[1:]
	switch e.Tag() {
	case "required":
		return "Please add a " + field
	case "email":
		return "Please add a valid email"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " can not be more than " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " is invalid"
	}
}
