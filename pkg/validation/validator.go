package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "user-post-service/pkg/errors"
)

// Validator checks request structs against their `validate` tags and turns
// failures into field-level violations using the JSON wire names.
// Validation is fail-fast per field but accumulates violations across the
// whole record in a single pass.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json tag name.
func New() *Validator {
	v := validator.New()

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

	return &Validator{validate: v}
}

// Validate checks the given struct and returns nil on success or a
// *errors.ValidationError carrying one violation per failing field.
// It has no side effects on its input.
func (v *Validator) Validate(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the input was not a struct at all.
		return apperrors.NewValidationError("", err.Error())
	}

	violations := make([]apperrors.Violation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, apperrors.Violation{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}

	return apperrors.NewValidationErrors(violations)
}

// messageFor renders a human-readable message for a single failed constraint.
func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
