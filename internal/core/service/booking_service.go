package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/metrics"
	"github.com/saricare/booking-api/internal/pkg/validate"
)

// BookingService owns booking creation and the admin-driven lifecycle.
type BookingService struct {
	repo   ports.BookingRepository
	events ports.EventPublisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewBookingService(repo ports.BookingRepository, events ports.EventPublisher, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, events: events, logger: logger, now: time.Now}
}

// CreateBooking validates the submission and stores it as Pending/Pending with
// a zero total. owner binds the booking to a user or marks it as a guest booking.
func (s *BookingService) CreateBooking(ctx context.Context, in ports.CreateBookingInput, owner domain.Owner) (*domain.Booking, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	items := make([]domain.BookingItem, len(in.Items))
	for i, it := range in.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items[i] = domain.BookingItem{Service: it.Service, Quantity: qty, Price: it.Price}
	}

	b := &domain.Booking{
		User:          owner,
		Name:          in.Name,
		Phone:         in.Phone,
		Address:       in.Address,
		PickupDate:    in.PickupDate.UTC(),
		PreferredTime: in.PreferredTime,
		Items:         items,
		TransactionID: strings.TrimSpace(in.TransactionID),
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		TotalAmount:   0,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	kind := "identified"
	if owner.IsGuest() {
		kind = "guest"
	}
	metrics.BookingsCreatedTotal.WithLabelValues(kind).Inc()

	actor, _ := owner.UserID()
	s.publish(b.ID, actor, domain.AxisCreated, "", string(b.Status))
	s.logger.Info().Str("booking_id", b.ID).Str("owner", owner.String()).Msg("booking created")
	return b, nil
}

func (s *BookingService) ListMine(ctx context.Context, id domain.Identity) ([]*domain.Booking, error) {
	if id.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByUser(ctx, id.UserID)
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, bookingID)
}

// UpdateStatus applies the present fields of in to the booking. Every
// requested change is checked before anything is written, so a rejected
// transition leaves the booking untouched.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Identity, bookingID string, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	prev := b.State()
	prevAmount := b.TotalAmount

	if in.Status != nil {
		if err := b.Status.Transition(*in.Status); err != nil {
			metrics.BookingTransitionsRejectedTotal.WithLabelValues("status").Inc()
			return nil, err
		}
		b.Status = *in.Status
	}
	if in.PaymentStatus != nil {
		if err := b.PaymentStatus.Transition(*in.PaymentStatus); err != nil {
			metrics.BookingTransitionsRejectedTotal.WithLabelValues("payment").Inc()
			return nil, err
		}
		b.PaymentStatus = *in.PaymentStatus
	}
	if in.TotalAmount != nil {
		b.TotalAmount = *in.TotalAmount
	}

	if err := s.repo.Save(ctx, b, prev); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			metrics.BookingTransitionsRejectedTotal.WithLabelValues("concurrent").Inc()
		}
		return nil, err
	}

	if b.Status != prev.Status {
		metrics.BookingTransitionsTotal.WithLabelValues("status", string(b.Status)).Inc()
		s.publish(b.ID, actor.UserID, domain.AxisStatus, string(prev.Status), string(b.Status))
	}
	if b.PaymentStatus != prev.PaymentStatus {
		metrics.BookingTransitionsTotal.WithLabelValues("payment", string(b.PaymentStatus)).Inc()
		s.publish(b.ID, actor.UserID, domain.AxisPayment, string(prev.PaymentStatus), string(b.PaymentStatus))
	}
	if b.TotalAmount != prevAmount {
		s.publish(b.ID, actor.UserID, domain.AxisTotalAmount, formatAmount(prevAmount), formatAmount(b.TotalAmount))
	}

	s.logger.Info().
		Str("booking_id", b.ID).
		Str("admin_id", actor.UserID).
		Str("status", string(b.Status)).
		Str("payment_status", string(b.PaymentStatus)).
		Float64("total_amount", b.TotalAmount).
		Msg("booking updated")
	return b, nil
}

// UpdateHealthReport replaces the booking's whole health report.
func (s *BookingService) UpdateHealthReport(ctx context.Context, actor domain.Identity, bookingID string, in ports.HealthReportInput) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	condition := in.Condition
	if condition == "" {
		condition = domain.ConditionGood
	}
	var from string
	if b.HealthReport != nil {
		from = string(b.HealthReport.Condition)
	}
	b.HealthReport = &domain.HealthReport{
		Condition:      condition,
		Notes:          in.Notes,
		Recommendation: in.Recommendation,
	}

	if err := s.repo.Save(ctx, b, b.State()); err != nil {
		return nil, err
	}

	s.publish(b.ID, actor.UserID, domain.AxisHealthReport, from, string(condition))
	s.logger.Info().Str("booking_id", b.ID).Str("condition", string(condition)).Msg("health report updated")
	return b, nil
}

func (s *BookingService) publish(bookingID, actorID string, axis domain.EventAxis, from, to string) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.BookingEvent{
		BookingID: bookingID,
		ActorID:   actorID,
		Axis:      axis,
		From:      from,
		To:        to,
		At:        s.now().UTC(),
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
