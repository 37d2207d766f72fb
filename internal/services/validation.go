package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newDTOValidator builds the validator used for write requests. Field names
// in violation reports follow the json tags, so clients see the names they
// sent.
func newDTOValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkDTO validates a write payload, collecting every violation before
// failing. Returns nil when the payload is clean.
func checkDTO(v *validator.Validate, payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	vErr := &ValidationError{}
	for _, f := range violations {
		vErr.Fields = append(vErr.Fields, FieldError{
			Field:   f.Field(),
			Message: messageForViolation(f),
		})
	}
	return vErr
}

// messageForViolation renders a human message per constraint tag.
func messageForViolation(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", f.Field(), f.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", f.Field(), f.Param())
	case "gt":
		return fmt.Sprintf("%s must be positive", f.Field())
	default:
		return fmt.Sprintf("%s is invalid", f.Field())
	}
}
