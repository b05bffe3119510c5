package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

// AdminHandler serves the /api/admin routes. Every route sits behind Auth
// and AdminOnly.
type AdminHandler struct {
	admin     ports.AdminService
	lifecycle ports.BookingLifecycle
}

func NewAdminHandler(admin ports.AdminService, lifecycle ports.BookingLifecycle) *AdminHandler {
	return &AdminHandler{admin: admin, lifecycle: lifecycle}
}

// Stats
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// ListBookings
//
// @Summary      All bookings with owners
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   adminBookingResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c echo.Context) error {
	list, err := h.admin.ListBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminBookings(list))
}

// UpdateBookingStatus applies a partial status, payment and amount update.
//
// @Summary      Update booking status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking ID"
// @Param        body  body      updateStatusRequest  true  "Fields to change"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /api/admin/bookings/{id}/status [put]
func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	b, err := h.lifecycle.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateHealthReport
//
// @Summary      Replace a booking's health report
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking ID"
// @Param        body  body      healthReportRequest  true  "Report"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/bookings/{id}/health-report [put]
func (h *AdminHandler) UpdateHealthReport(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	var req healthReportRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	b, err := h.lifecycle.UpdateHealthReport(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// ListContacts
//
// @Summary      All contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contact
// @Router       /api/admin/contacts [get]
func (h *AdminHandler) ListContacts(c echo.Context) error {
	list, err := h.admin.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateContactStatus
//
// @Summary      Mark a contact message
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Contact ID"
// @Param        body  body      contactStatusRequest  true  "New status"
// @Success      200   {object}  domain.Contact
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/contacts/{id}/status [put]
func (h *AdminHandler) UpdateContactStatus(c echo.Context) error {
	var req contactStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.admin.UpdateContactStatus(c.Request().Context(), c.Param("id"), domain.ContactStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// ListUsers
//
// @Summary      Registered customers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	list, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
