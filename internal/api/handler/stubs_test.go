package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saricare/booking-api/internal/api/middleware"
	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	profileFn  func(ctx context.Context, id domain.Identity) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, id domain.Identity) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

type stubBookingService struct {
	createFn func(ctx context.Context, in ports.CreateBookingInput, owner domain.Owner) (*domain.Booking, error)
	mineFn   func(ctx context.Context, id domain.Identity) ([]*domain.Booking, error)
	getFn    func(ctx context.Context, id string) (*domain.Booking, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, in ports.CreateBookingInput, owner domain.Owner) (*domain.Booking, error) {
	return s.createFn(ctx, in, owner)
}

func (s *stubBookingService) ListMine(ctx context.Context, id domain.Identity) ([]*domain.Booking, error) {
	return s.mineFn(ctx, id)
}

func (s *stubBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getFn(ctx, id)
}

type stubLifecycle struct {
	statusFn func(ctx context.Context, actor domain.Identity, id string, in ports.UpdateBookingStatusInput) (*domain.Booking, error)
	healthFn func(ctx context.Context, actor domain.Identity, id string, in ports.HealthReportInput) (*domain.Booking, error)
}

func (s *stubLifecycle) UpdateStatus(ctx context.Context, actor domain.Identity, id string, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
	return s.statusFn(ctx, actor, id, in)
}

func (s *stubLifecycle) UpdateHealthReport(ctx context.Context, actor domain.Identity, id string, in ports.HealthReportInput) (*domain.Booking, error) {
	return s.healthFn(ctx, actor, id, in)
}

type stubAdminService struct {
	stats         *ports.DashboardStats
	bookings      []ports.BookingWithOwner
	contacts      []*domain.Contact
	users         []*domain.User
	updateContact func(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
}

func (s *stubAdminService) Stats(context.Context) (*ports.DashboardStats, error) { return s.stats, nil }

func (s *stubAdminService) ListBookings(context.Context) ([]ports.BookingWithOwner, error) {
	return s.bookings, nil
}

func (s *stubAdminService) ListContacts(context.Context) ([]*domain.Contact, error) {
	return s.contacts, nil
}

func (s *stubAdminService) UpdateContactStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	return s.updateContact(ctx, id, status)
}

func (s *stubAdminService) ListUsers(context.Context) ([]*domain.User, error) { return s.users, nil }

type stubContactService struct {
	createFn func(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error)
}

func (s *stubContactService) CreateContact(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
	return s.createFn(ctx, in)
}

// newJSONContext builds an echo context for a JSON request. A non-nil id is
// attached the way the auth middleware would.
func newJSONContext(method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if id != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
