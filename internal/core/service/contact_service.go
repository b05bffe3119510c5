package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/metrics"
	"github.com/saricare/booking-api/internal/pkg/validate"
)

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) CreateContact(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	c := &domain.Contact{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     in.Email,
		Phone:     strings.TrimSpace(in.Phone),
		Message:   in.Message,
		Status:    domain.ContactNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact")
		return nil, err
	}

	metrics.ContactsCreatedTotal.Inc()
	s.logger.Info().Str("contact_id", c.ID).Msg("contact message received")
	return c, nil
}
