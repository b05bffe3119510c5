package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/core/domain"
)

// bind decodes the request body; malformed JSON is a validation failure.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid request payload")
	}
	return nil
}
