package handler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"voiceforge/internal/apperr"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var details []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				details = append(details, describeFieldError(fe))
			}
		}
		return apperr.Validation("Validation failed", details...)
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	// Trim the top-level struct name: "CreatePersonalVoiceRequest.Profile.JobTitle"
	// reads better as "Profile.JobTitle".
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// bind decodes and validates a request payload in one step.
func bind(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return c.Validate(payload)
}
