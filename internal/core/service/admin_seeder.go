package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
	"github.com/saricare/booking-api/internal/pkg/metrics"
)

const (
	adminName   = "Admin"
	adminMobile = "0000000000"
)

// AdminSeeder makes sure the configured admin account exists.
//
// The seeded flag only saves store round-trips inside one process. Races
// between processes are settled by the unique email index: the loser of a
// concurrent insert sees domain.ErrDuplicateKey and treats it as seeded.
type AdminSeeder struct {
	users    ports.UserRepository
	email    string
	password string
	log      zerolog.Logger
	seeded   atomic.Bool
}

func NewAdminSeeder(users ports.UserRepository, email, password string, log zerolog.Logger) *AdminSeeder {
	return &AdminSeeder{
		users:    users,
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		log:      log,
	}
}

// Seeded reports whether a previous Ensure call confirmed the admin exists.
func (s *AdminSeeder) Seeded() bool {
	return s.seeded.Load()
}

// Ensure creates the admin account when it does not exist yet. It is safe to
// call concurrently and from several processes at once.
func (s *AdminSeeder) Ensure(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}
	if s.email == "" || s.password == "" {
		return errors.New("seed admin: email and password must be configured")
	}

	_, err := s.users.FindByEmail(ctx, s.email)
	switch {
	case err == nil:
		metrics.AdminSeedTotal.WithLabelValues("exists").Inc()
		s.seeded.Store(true)
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		metrics.AdminSeedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("seed admin: lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	_, err = s.users.Create(ctx, &domain.User{
		Name:         adminName,
		Email:        s.email,
		PasswordHash: string(hash),
		Mobile:       adminMobile,
		Gender:       domain.GenderOther,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	switch {
	case err == nil:
		metrics.AdminSeedTotal.WithLabelValues("created").Inc()
		s.log.Info().Str("email", s.email).Msg("admin user created")
	case errors.Is(err, domain.ErrDuplicateKey):
		metrics.AdminSeedTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Str("email", s.email).Msg("admin user seeded concurrently")
	default:
		metrics.AdminSeedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("seed admin: create: %w", err)
	}

	s.seeded.Store(true)
	return nil
}
