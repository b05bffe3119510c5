package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/validate"
)

// AdminService serves the read models and contact moderation behind /admin.
type AdminService struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	contacts ports.ContactRepository
	logger   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, bookings ports.BookingRepository, contacts ports.ContactRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, bookings: bookings, contacts: contacts, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var (
		st  ports.DashboardStats
		err error
	)

	if st.UserCount, err = s.users.CountByRole(ctx, domain.RoleUser); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if st.BookingCount, err = s.bookings.Count(ctx, ports.BookingFilter{}); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	statusCounts := map[domain.BookingStatus]*int64{
		domain.BookingPending:   &st.StatusCounts.Pending,
		domain.BookingConfirmed: &st.StatusCounts.Confirmed,
		domain.BookingCompleted: &st.StatusCounts.Completed,
		domain.BookingCancelled: &st.StatusCounts.Cancelled,
	}
	for _, status := range domain.BookingStatuses {
		n, err := s.bookings.Count(ctx, ports.BookingFilter{Status: status})
		if err != nil {
			return nil, fmt.Errorf("count %s bookings: %w", status, err)
		}
		*statusCounts[status] = n
	}

	paymentCounts := map[domain.PaymentStatus]*int64{
		domain.PaymentPending:   &st.PaymentCounts.Pending,
		domain.PaymentCompleted: &st.PaymentCounts.Completed,
		domain.PaymentFailed:    &st.PaymentCounts.Failed,
	}
	for _, status := range domain.PaymentStatuses {
		n, err := s.bookings.Count(ctx, ports.BookingFilter{PaymentStatus: status})
		if err != nil {
			return nil, fmt.Errorf("count %s payments: %w", status, err)
		}
		*paymentCounts[status] = n
	}

	if st.NewContactCount, err = s.contacts.Count(ctx, domain.ContactNew); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	return &st, nil
}

// ListBookings returns every booking newest first with identified owners populated.
func (s *AdminService) ListBookings(ctx context.Context) ([]ports.BookingWithOwner, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, b := range bookings {
		if id, ok := b.User.UserID(); ok {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	owners := make(map[string]*domain.UserRef, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("populate booking owners: %w", err)
		}
		for _, u := range users {
			owners[u.ID] = &domain.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}

	out := make([]ports.BookingWithOwner, len(bookings))
	for i, b := range bookings {
		out[i] = ports.BookingWithOwner{Booking: b}
		if id, ok := b.User.UserID(); ok {
			out[i].Owner = owners[id]
		}
	}
	return out, nil
}

func (s *AdminService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *AdminService) UpdateContactStatus(ctx context.Context, contactID string, status domain.ContactStatus) (*domain.Contact, error) {
	in := struct {
		Status domain.ContactStatus `validate:"required,enum"`
	}{Status: status}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	c, err := s.contacts.UpdateStatus(ctx, contactID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("contact_id", c.ID).Str("status", string(status)).Msg("contact status updated")
	return c, nil
}

// ListUsers returns non-admin users; password hashes are never loaded.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}
