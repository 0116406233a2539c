// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "vollmed/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator ready to be assigned to echo's Validator field.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures to the domain validation error,
// so the error handler renders them as a 400 instead of a generic 500.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
