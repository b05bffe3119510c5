package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/core/ports"
)

type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type createContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Create stores a contact form submission.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Message"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  map[string]any
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	contact, err := h.contacts.CreateContact(c.Request().Context(), ports.CreateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}
