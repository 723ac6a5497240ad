package utils

import (
	"time"

	"clinicore-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("card_status", validateCardStatus)
	validate.RegisterValidation("date", validateDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "receptionist", "doctor", "lab_technician", "pharmacist", "admin", "triage_officer":
		return true
	}
	return false
}

func validateCardStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "expired", "suspended":
		return true
	}
	return false
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateOnlyLayout, fl.Field().String())
	return err == nil
}
