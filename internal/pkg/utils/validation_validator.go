package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("consultation_type", validateConsultationType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateConsultationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Video Consultation" || value == "Voice Call"
}
