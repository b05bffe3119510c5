package ports

import (
	"context"
	"time"

	"github.com/saricare/booking-api/internal/core/domain"
)

type BookingItemInput struct {
	Service  string `validate:"required"`
	Quantity int    `validate:"omitempty,min=1"`
	Price    string
}

// CreateBookingInput carries the customer-supplied booking fields.
type CreateBookingInput struct {
	Name          string               `validate:"required"`
	Phone         string               `validate:"required,phone10"`
	Address       string               `validate:"required"`
	PickupDate    time.Time            `validate:"required"`
	PreferredTime domain.PreferredTime `validate:"required,enum"`
	Items         []BookingItemInput   `validate:"dive"`
	TransactionID string
}

// UpdateBookingStatusInput is a partial update; nil fields are left unchanged.
type UpdateBookingStatusInput struct {
	Status        *domain.BookingStatus `validate:"omitempty,enum"`
	PaymentStatus *domain.PaymentStatus `validate:"omitempty,enum"`
	TotalAmount   *float64              `validate:"omitempty,gte=0"`
}

// HealthReportInput replaces the whole health report. An empty condition means Good.
type HealthReportInput struct {
	Condition      domain.Condition `validate:"omitempty,enum"`
	Notes          string
	Recommendation string
}

// BookingService covers the customer side of the booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput, owner domain.Owner) (*domain.Booking, error)
	ListMine(ctx context.Context, id domain.Identity) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// BookingLifecycle covers admin mutations of an existing booking.
type BookingLifecycle interface {
	UpdateStatus(ctx context.Context, actor domain.Identity, bookingID string, in UpdateBookingStatusInput) (*domain.Booking, error)
	UpdateHealthReport(ctx context.Context, actor domain.Identity, bookingID string, in HealthReportInput) (*domain.Booking, error)
}

// EventPublisher hands booking events to the asynchronous audit pipeline.
type EventPublisher interface {
	Publish(event domain.BookingEvent)
}

// EventService records a single booking event.
type EventService interface {
	Process(ctx context.Context, event domain.BookingEvent) error
}
