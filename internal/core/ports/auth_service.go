package ports

import (
	"context"

	"github.com/saricare/booking-api/internal/core/domain"
)

// TokenService issues and verifies identity tokens.
type TokenService interface {
	Issue(subjectID string) (string, error)
	// Verify returns the subject id, or domain.ErrInvalidToken.
	Verify(token string) (string, error)
}

type RegisterInput struct {
	Name     string        `validate:"required"`
	Email    string        `validate:"required,email"`
	Password string        `validate:"required,min=6"`
	Mobile   string        `validate:"required,phone10"`
	Gender   domain.Gender `validate:"required,enum"`
}

type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, id domain.Identity) (*domain.User, error)
}
