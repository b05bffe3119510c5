package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create registers a booking for the caller, or as a guest without a token.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	b, err := h.bookings.CreateBooking(c.Request().Context(), in, owner(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// Mine lists the caller's bookings, newest first.
//
// @Summary      My bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]any
// @Router       /api/bookings/mybookings [get]
func (h *BookingHandler) Mine(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.bookings.ListMine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get is public so the payment page can load a booking by id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  map[string]any
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.bookings.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}
