package handler

import (
	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

type statusCountsResponse struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type paymentCountsResponse struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

type statsResponse struct {
	UserCount       int64                 `json:"userCount"`
	BookingCount    int64                 `json:"bookingCount"`
	StatusCounts    statusCountsResponse  `json:"statusCounts"`
	PaymentCounts   paymentCountsResponse `json:"paymentCounts"`
	NewContactCount int64                 `json:"newContactCount"`
}

func toStatsResponse(s *ports.DashboardStats) statsResponse {
	return statsResponse{
		UserCount:    s.UserCount,
		BookingCount: s.BookingCount,
		StatusCounts: statusCountsResponse{
			Pending:   s.StatusCounts.Pending,
			Confirmed: s.StatusCounts.Confirmed,
			Completed: s.StatusCounts.Completed,
			Cancelled: s.StatusCounts.Cancelled,
		},
		PaymentCounts: paymentCountsResponse{
			Pending:   s.PaymentCounts.Pending,
			Completed: s.PaymentCounts.Completed,
			Failed:    s.PaymentCounts.Failed,
		},
		NewContactCount: s.NewContactCount,
	}
}

// adminBookingResponse renders a booking with its owner populated. The outer
// User field shadows the embedded booking's plain owner id.
type adminBookingResponse struct {
	*domain.Booking
	User *domain.UserRef `json:"user"`
}

func toAdminBookings(list []ports.BookingWithOwner) []adminBookingResponse {
	out := make([]adminBookingResponse, len(list))
	for i, bw := range list {
		out[i] = adminBookingResponse{Booking: bw.Booking, User: bw.Owner}
	}
	return out
}

type contactStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
