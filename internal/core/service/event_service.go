package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/metrics"
)

type eventService struct {
	eventRepo ports.BookingEventRepository
	log       zerolog.Logger
}

// NewEventService returns an EventService that persists the booking audit trail.
func NewEventService(eventRepo ports.BookingEventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{eventRepo: eventRepo, log: log}
}

// Process persists a single booking event.
func (s *eventService) Process(ctx context.Context, ev domain.BookingEvent) error {
	if ev.BookingID == "" || ev.Axis == "" {
		return fmt.Errorf("process event: incomplete event %+v", ev)
	}

	if err := s.eventRepo.InsertEvent(ctx, &ev); err != nil {
		metrics.BookingEventsErrorsTotal.Inc()
		return fmt.Errorf("process event: insert: %w", err)
	}

	s.log.Debug().
		Str("booking_id", ev.BookingID).
		Str("axis", string(ev.Axis)).
		Str("from", ev.From).
		Str("to", ev.To).
		Msg("booking event recorded")
	return nil
}
