package handler

import (
	"strings"
	"time"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

type bookingItemRequest struct {
	Service  string `json:"service"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type createBookingRequest struct {
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	PickupDate    string               `json:"pickupDate" example:"2024-06-01"`
	PreferredTime string               `json:"preferredTime" example:"Morning (9 AM - 12 PM)"`
	Items         []bookingItemRequest `json:"items"`
	TransactionID string               `json:"transactionId"`
}

type updateStatusRequest struct {
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"paymentStatus"`
	TotalAmount   *float64 `json:"totalAmount"`
}

type healthReportRequest struct {
	Condition      string `json:"condition"`
	Notes          string `json:"notes"`
	Recommendation string `json:"recommendation"`
}

var pickupDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// parsePickupDate accepts a full timestamp or a bare date. An empty string
// yields the zero time so the required check reports it.
func parsePickupDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range pickupDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.NewValidationError("Please enter a valid pickup date")
}

func (r createBookingRequest) toInput() (ports.CreateBookingInput, error) {
	pickup, err := parsePickupDate(r.PickupDate)
	if err != nil {
		return ports.CreateBookingInput{}, err
	}

	items := make([]ports.BookingItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = ports.BookingItemInput{Service: it.Service, Quantity: it.Quantity, Price: it.Price}
	}

	return ports.CreateBookingInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Address:       r.Address,
		PickupDate:    pickup,
		PreferredTime: domain.PreferredTime(r.PreferredTime),
		Items:         items,
		TransactionID: r.TransactionID,
	}, nil
}

// toInput treats an empty status or payment status as omitted.
func (r updateStatusRequest) toInput() ports.UpdateBookingStatusInput {
	var in ports.UpdateBookingStatusInput
	if r.Status != nil && *r.Status != "" {
		s := domain.BookingStatus(*r.Status)
		in.Status = &s
	}
	if r.PaymentStatus != nil && *r.PaymentStatus != "" {
		p := domain.PaymentStatus(*r.PaymentStatus)
		in.PaymentStatus = &p
	}
	in.TotalAmount = r.TotalAmount
	return in
}

func (r healthReportRequest) toInput() ports.HealthReportInput {
	return ports.HealthReportInput{
		Condition:      domain.Condition(r.Condition),
		Notes:          r.Notes,
		Recommendation: r.Recommendation,
	}
}
