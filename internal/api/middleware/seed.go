package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Seeder makes sure the admin account exists.
type Seeder interface {
	Ensure(ctx context.Context) error
}

// SeedAdmin runs the seeder before every request. A failure is logged and
// the request proceeds; the next request tries again.
func SeedAdmin(seeder Seeder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := seeder.Ensure(c.Request().Context()); err != nil {
				log.Error().Err(err).Msg("error seeding admin user")
			}
			return next(c)
		}
	}
}
