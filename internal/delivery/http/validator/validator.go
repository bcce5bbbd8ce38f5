// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *playgroundvalidator.Validate
}

// New creates an echo-compatible request validator.
func New() *Validator {
	return &Validator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
