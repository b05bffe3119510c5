package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/saricare/booking-api/docs"
	"github.com/saricare/booking-api/internal/api/handler"
	"github.com/saricare/booking-api/internal/api/middleware"
	"github.com/saricare/booking-api/internal/core/ports"
)

const bodyLimit = "1M"

// Deps is everything the HTTP layer needs from the composition root.
type Deps struct {
	Auth      ports.AuthService
	Bookings  ports.BookingService
	Lifecycle ports.BookingLifecycle
	Contacts  ports.ContactService
	Admin     ports.AdminService
	Tokens    ports.TokenService
	Users     ports.UserRepository
	Seeder    middleware.Seeder
	Limiter   middleware.Limiter
	Health    *handler.HealthHandler

	CORSOrigins []string
	// Development exposes error chains in responses.
	Development bool
	// Swagger mounts /swagger/*.
	Swagger bool
	// Registry receives the HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Development)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "saricare",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	if d.Limiter != nil {
		e.Use(middleware.RateLimit(d.Limiter, d.Log))
	}
	if d.Seeder != nil {
		e.Use(middleware.SeedAdmin(d.Seeder, d.Log))
	}

	// --- Probes and tooling (no auth required) ---
	if d.Health != nil {
		e.GET("/", d.Health.Banner)
		e.GET("/health", d.Health.Liveness)
		e.GET("/health/ready", d.Health.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	protect := middleware.Auth(d.Tokens, d.Users)
	optional := middleware.OptionalAuth(d.Tokens, d.Users)
	adminOnly := middleware.AdminOnly()

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/profile", authHandler.Profile, protect)

	// --- Booking routes ---
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	api.POST("/bookings", bookingHandler.Create, optional)
	api.GET("/bookings/mybookings", bookingHandler.Mine, protect)
	api.GET("/bookings/:id", bookingHandler.Get)

	// --- Contact routes ---
	contactHandler := handler.NewContactHandler(d.Contacts)
	api.POST("/contact", contactHandler.Create)

	// --- Admin routes ---
	adminHandler := handler.NewAdminHandler(d.Admin, d.Lifecycle)
	admin := api.Group("/admin", protect, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/bookings", adminHandler.ListBookings)
	admin.PUT("/bookings/:id/status", adminHandler.UpdateBookingStatus)
	admin.PUT("/bookings/:id/health-report", adminHandler.UpdateHealthReport)
	admin.GET("/contacts", adminHandler.ListContacts)
	admin.PUT("/contacts/:id/status", adminHandler.UpdateContactStatus)
	admin.GET("/users", adminHandler.ListUsers)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found - "+c.Request().URL.Path)
	})

	return e
}
