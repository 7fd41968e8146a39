package exceptions

import (
	"strings"

	"telemed-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of: %s",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"email":    "must be a valid email address",
	"datetime": "must be a valid timestamp",
}

var tagsWithParams = map[string]bool{
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"min":   true,
	"max":   true,
}

// FormatFirstValidationError turns the first validator error into a short
// client-facing message.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()

	message, ok := validationMessages[tag]
	if !ok {
		message = "is invalid"
	}
	if tagsWithParams[tag] {
		if tag == "oneof" {
			message = strings.Replace(message, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			message = strings.Replace(message, "%s", firstErr.Param(), 1)
		}
	}

	return fieldName + " " + message
}
