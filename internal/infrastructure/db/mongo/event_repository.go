package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

const collectionBookingEvents = "booking_events"

// EventRepository implements ports.BookingEventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.BookingEventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists a booking event to the booking_events audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.BookingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"axis":        string(event.Axis),
		"from":        event.From,
		"to":          event.To,
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if oid, err := primitive.ObjectIDFromHex(event.BookingID); err == nil {
		doc["booking"] = oid
	} else {
		doc["booking"] = event.BookingID
	}
	if event.ActorID != "" {
		doc["actor"] = event.ActorID
	}

	_, err := r.db.Collection(collectionBookingEvents).InsertOne(ctx, doc)
	return err
}
