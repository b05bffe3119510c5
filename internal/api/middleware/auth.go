package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/metrics"
)

var errNoToken = fmt.Errorf("%w, no token", domain.ErrUnauthorized)

// Auth requires a valid bearer token, loads its user and attaches the
// resulting Identity to the request context.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return errNoToken
			}
			if err := authenticate(c, tokens, users, authHeader); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth lets requests without an Authorization header through as
// guests. A header that is present must carry a valid token.
func OptionalAuth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}
			if err := authenticate(c, tokens, users, authHeader); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokens ports.TokenService, users ports.UserRepository, authHeader string) error {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
		return errNoToken
	}

	subject, err := tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return domain.ErrInvalidToken
	}

	user, err := users.FindByID(c.Request().Context(), subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
			return domain.ErrInvalidToken
		}
		return err
	}

	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), domain.IdentityOf(user))))
	return nil
}

// AdminOnly must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c.Request().Context())
			if !ok {
				return domain.ErrUnauthorized
			}
			if !id.IsAdmin() {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
