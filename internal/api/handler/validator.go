package handler

import (
	"github.com/saricare/booking-api/internal/pkg/validate"
)

// echoValidator lets Echo call c.Validate(req) with the shared validator, so
// request-level and service-level checks produce the same error messages.
type echoValidator struct{}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface.
func (echoValidator) Validate(i any) error {
	return validate.Struct(i)
}
