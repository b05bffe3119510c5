package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saricare/booking-api/internal/core/domain"
)

func TestEventService_Process_Persists(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, discardLogger)

	err := svc.Process(context.Background(), domain.BookingEvent{
		BookingID: "booking-1",
		ActorID:   "admin-1",
		Axis:      domain.AxisStatus,
		From:      "Pending",
		To:        "Confirmed",
		At:        time.Now(),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].To != "Confirmed" {
		t.Fatalf("expected event inserted, got %+v", repo.inserted)
	}
}

func TestEventService_Process_RejectsIncompleteEvent(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, discardLogger)

	if err := svc.Process(context.Background(), domain.BookingEvent{Axis: domain.AxisStatus}); err == nil {
		t.Fatal("expected error for missing booking id")
	}
	if len(repo.inserted) != 0 {
		t.Fatal("incomplete event must not be stored")
	}
}

func TestEventService_Process_InsertError(t *testing.T) {
	repo := &stubEventRepo{insertErr: errors.New("mongo down")}
	svc := NewEventService(repo, discardLogger)

	err := svc.Process(context.Background(), domain.BookingEvent{BookingID: "b", Axis: domain.AxisCreated})
	if err == nil || !errors.Is(err, repo.insertErr) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}
