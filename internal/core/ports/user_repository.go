package ports

import (
	"context"

	"github.com/saricare/booking-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts a user. A second user with the same email fails with
	// domain.ErrDuplicateKey; the store enforces this, not the caller.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID loads a user without its password hash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail loads a user including its password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs loads the given users without password hashes. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// ListByRole returns users with role, newest first, without password hashes.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
