package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/api/middleware"
	"github.com/saricare/booking-api/internal/core/domain"
)

// identity returns the caller attached by the auth middleware. Routes behind
// Auth always have one; a missing identity there is a wiring bug, reported as
// Unauthorized rather than a panic.
func identity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c.Request().Context())
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

// owner binds a booking to the caller, or to nobody for guest requests.
func owner(c echo.Context) domain.Owner {
	if id, ok := middleware.IdentityFrom(c.Request().Context()); ok {
		return domain.Identified(id.UserID)
	}
	return domain.Guest()
}
