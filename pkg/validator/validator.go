package validator

import (
	"reflect"
	"strings"

	"hospital-management/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.IsValidRole(fl.Field().String())
	})
	v.RegisterValidation("dayofweek", func(fl validator.FieldLevel) bool {
		return entity.IsValidDayOfWeek(fl.Field().String())
	})
	v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("apptstatus", func(fl validator.FieldLevel) bool {
		return entity.AppointmentStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case "role":
				errors[field] = field + " must be one of " + strings.Join(entity.Roles, ", ")
			case "dayofweek":
				errors[field] = field + " must be a weekday name such as monday"
			case "timeofday":
				errors[field] = field + " must be a time in HH:MM or HH:MM:SS format"
			case "apptstatus":
				errors[field] = field + " must be one of scheduled, completed, cancelled, no-show"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
