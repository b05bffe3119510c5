package ports

import (
	"context"

	"github.com/saricare/booking-api/internal/core/domain"
)

type CreateContactInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required"`
	Message   string `validate:"required"`
}

type ContactService interface {
	CreateContact(ctx context.Context, in CreateContactInput) (*domain.Contact, error)
}

type StatusCounts struct {
	Pending   int64
	Confirmed int64
	Completed int64
	Cancelled int64
}

type PaymentCounts struct {
	Pending   int64
	Completed int64
	Failed    int64
}

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	UserCount       int64
	BookingCount    int64
	StatusCounts    StatusCounts
	PaymentCounts   PaymentCounts
	NewContactCount int64
}

// BookingWithOwner is a booking with its identified owner populated.
// Owner is nil for guest bookings and for owners that no longer exist.
type BookingWithOwner struct {
	Booking *domain.Booking
	Owner   *domain.UserRef
}

type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListBookings(ctx context.Context) ([]BookingWithOwner, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
	UpdateContactStatus(ctx context.Context, contactID string, status domain.ContactStatus) (*domain.Contact, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
