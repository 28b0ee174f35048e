package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// handlePattern matches company handles: lowercase letters, digits and dashes
var handlePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report JSON field names instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("handle", validateHandle)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field-to-message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "handle":
			errs[field] = "Must be lowercase letters, digits and dashes"
		case "max":
			if e.Kind() == reflect.String {
				errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
			}
		case "min":
			if e.Kind() == reflect.String {
				errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
			}
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateHandle allows empty values; presence is enforced by 'required'
func validateHandle(fl validator.FieldLevel) bool {
	handle := fl.Field().String()
	if handle == "" {
		return true
	}
	return handlePattern.MatchString(handle)
}
