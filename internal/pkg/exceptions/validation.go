package exceptions

import (
	"strings"

	"clinicore-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var customValidationMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"oneof":       "must be one of %s",
	"min":         "must be at least %s characters",
	"max":         "must be at most %s characters",
	"role":        "must be a known staff role",
	"card_status": "must be one of active, expired, suspended",
	"date":        "must be a date in YYYY-MM-DD format",
}

var tagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()

	customMessage, ok := customValidationMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if tagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
