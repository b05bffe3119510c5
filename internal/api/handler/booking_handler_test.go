package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

const bookingBody = `{
	"name": "Asha",
	"phone": "9876543210",
	"address": "12 Lake Road",
	"pickupDate": "2024-06-01",
	"preferredTime": "Morning (9 AM - 12 PM)",
	"items": [{"service": "Dry Clean", "quantity": 2, "price": "500"}]
}`

func TestBookingHandler_Create_Guest(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput, owner domain.Owner) (*domain.Booking, error) {
			if !owner.IsGuest() {
				t.Fatalf("expected guest owner, got %s", owner)
			}
			want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
			if !in.PickupDate.Equal(want) {
				t.Fatalf("pickup date: want %v, got %v", want, in.PickupDate)
			}
			if len(in.Items) != 1 || in.Items[0].Quantity != 2 {
				t.Fatalf("unexpected items: %+v", in.Items)
			}
			return &domain.Booking{ID: "b1", User: owner, Status: domain.BookingPending}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/bookings", bookingBody, nil)

	if err := NewBookingHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, ok := resp["user"]; !ok || v != nil {
		t.Fatalf("guest booking should render user as null, got %v", v)
	}
}

func TestBookingHandler_Create_BindsCaller(t *testing.T) {
	var got domain.Owner
	stub := &stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput, owner domain.Owner) (*domain.Booking, error) {
			got = owner
			return &domain.Booking{ID: "b1", User: owner}, nil
		},
	}
	id := &domain.Identity{UserID: "u1", Role: domain.RoleUser}
	c, _ := newJSONContext(http.MethodPost, "/api/bookings", bookingBody, id)

	if err := NewBookingHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if uid, ok := got.UserID(); !ok || uid != "u1" {
		t.Fatalf("expected owner u1, got %s", got)
	}
}

func TestBookingHandler_Create_BadPickupDate(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/bookings", `{"pickupDate":"next tuesday"}`, nil)

	err := NewBookingHandler(&stubBookingService{}).Create(c)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingHandler_Get_NotFound(t *testing.T) {
	stub := &stubBookingService{
		getFn: func(ctx context.Context, id string) (*domain.Booking, error) {
			if id != "nope" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil, domain.ErrBookingNotFound
		},
	}
	c, _ := newJSONContext(http.MethodGet, "/api/bookings/nope", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := NewBookingHandler(stub).Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingHandler_Mine(t *testing.T) {
	stub := &stubBookingService{
		mineFn: func(ctx context.Context, id domain.Identity) ([]*domain.Booking, error) {
			return []*domain.Booking{{ID: "b2"}, {ID: "b1"}}, nil
		},
	}
	id := &domain.Identity{UserID: "u1"}
	c, rec := newJSONContext(http.MethodGet, "/api/bookings/mybookings", "", id)

	if err := NewBookingHandler(stub).Mine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 2 || list[0]["_id"] != "b2" {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestParsePickupDate(t *testing.T) {
	cases := map[string]time.Time{
		"2024-06-01":           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"2024-06-01T10:30":     time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		"2024-06-01T10:30:00Z": time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		"":                     {},
	}
	for in, want := range cases {
		got, err := parsePickupDate(in)
		if err != nil {
			t.Errorf("parsePickupDate(%q): %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parsePickupDate(%q): want %v, got %v", in, want, got)
		}
	}
}
