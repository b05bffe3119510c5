package ports

import (
	"context"

	"github.com/saricare/booking-api/internal/core/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	// FindByID returns domain.ErrContactNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	// List returns every contact message, newest first.
	List(ctx context.Context) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	// Count counts contacts in status, or all contacts when status is empty.
	Count(ctx context.Context, status domain.ContactStatus) (int64, error)
}
