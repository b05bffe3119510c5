package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

func TestContactHandler_Create(t *testing.T) {
	stub := &stubContactService{
		createFn: func(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
			if in.FirstName != "Ravi" || in.Message != "Hello" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Contact{ID: "c1", FirstName: in.FirstName, Status: domain.ContactNew}, nil
		},
	}
	body := `{"firstName":"Ravi","lastName":"K","email":"ravi@example.com","phone":"9876543210","message":"Hello"}`
	c, rec := newJSONContext(http.MethodPost, "/api/contact", body, nil)

	if err := NewContactHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
