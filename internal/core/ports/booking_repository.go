package ports

import (
	"context"

	"github.com/saricare/booking-api/internal/core/domain"
)

// BookingFilter narrows Count queries. Zero fields do not filter.
type BookingFilter struct {
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Create inserts b and fills in its generated ID.
	Create(ctx context.Context, b *domain.Booking) error
	// FindByID returns domain.ErrBookingNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindByUser returns the bookings owned by userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	// List returns every booking, newest first.
	List(ctx context.Context) ([]*domain.Booking, error)
	// Save replaces b only while the stored booking is still at revision
	// prev.Version, and bumps b.Version on success.
	// A booking moved by another writer fails with domain.ErrInvalidTransition.
	Save(ctx context.Context, b *domain.Booking, prev domain.BookingState) error
	Count(ctx context.Context, filter BookingFilter) (int64, error)
}

// BookingEventRepository persists the booking audit trail.
type BookingEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}
