package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBookingItem struct {
	Service  string `bson:"service"`
	Quantity int    `bson:"quantity"`
	Price    string `bson:"price,omitempty"`
}

type mongoHealthReport struct {
	Condition      string `bson:"condition"`
	Notes          string `bson:"notes"`
	Recommendation string `bson:"recommendation"`
}

// mongoBooking is the stored shape. User is absent for guest bookings.
type mongoBooking struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	User          *primitive.ObjectID `bson:"user,omitempty"`
	Name          string              `bson:"name"`
	Phone         string              `bson:"phone"`
	Address       string              `bson:"address"`
	PickupDate    time.Time           `bson:"pickupDate"`
	PreferredTime string              `bson:"preferredTime"`
	Items         []mongoBookingItem  `bson:"items"`
	TransactionID string              `bson:"transactionId,omitempty"`
	Status        string              `bson:"status"`
	PaymentStatus string              `bson:"paymentStatus"`
	TotalAmount   float64             `bson:"totalAmount"`
	HealthReport  *mongoHealthReport  `bson:"healthReport,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt"`
	Version       int64               `bson:"__v"`
}

func toMongoBooking(b *domain.Booking) (mongoBooking, error) {
	doc := mongoBooking{
		Name:          b.Name,
		Phone:         b.Phone,
		Address:       b.Address,
		PickupDate:    b.PickupDate,
		PreferredTime: string(b.PreferredTime),
		Items:         make([]mongoBookingItem, len(b.Items)),
		TransactionID: b.TransactionID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
		Version:       b.Version,
	}
	if b.ID != "" {
		oid, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			return doc, domain.ErrBookingNotFound
		}
		doc.ID = oid
	}
	if userID, ok := b.User.UserID(); ok {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return doc, fmt.Errorf("booking owner %q: %w", userID, err)
		}
		doc.User = &oid
	}
	for i, it := range b.Items {
		doc.Items[i] = mongoBookingItem{Service: it.Service, Quantity: it.Quantity, Price: it.Price}
	}
	if hr := b.HealthReport; hr != nil {
		doc.HealthReport = &mongoHealthReport{
			Condition:      string(hr.Condition),
			Notes:          hr.Notes,
			Recommendation: hr.Recommendation,
		}
	}
	return doc, nil
}

func (m *mongoBooking) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID.Hex(),
		User:          domain.Guest(),
		Name:          m.Name,
		Phone:         m.Phone,
		Address:       m.Address,
		PickupDate:    m.PickupDate.UTC(),
		PreferredTime: domain.PreferredTime(m.PreferredTime),
		Items:         make([]domain.BookingItem, len(m.Items)),
		TransactionID: m.TransactionID,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt.UTC(),
		Version:       m.Version,
	}
	if m.User != nil {
		b.User = domain.Identified(m.User.Hex())
	}
	for i, it := range m.Items {
		b.Items[i] = domain.BookingItem{Service: it.Service, Quantity: it.Quantity, Price: it.Price}
	}
	if hr := m.HealthReport; hr != nil {
		b.HealthReport = &domain.HealthReport{
			Condition:      domain.Condition(hr.Condition),
			Notes:          hr.Notes,
			Recommendation: hr.Recommendation,
		}
	}
	return b
}

// Create inserts a new booking document and sets b.ID.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoBooking(b)
	if err != nil {
		return err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(id, domain.ErrBookingNotFound)
	if err != nil {
		return nil, err
	}

	var doc mongoBooking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*domain.Booking{}, nil
	}
	return r.find(ctx, bson.M{"user": oid})
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	var docs []mongoBooking
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	out := make([]*domain.Booking, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

// Save replaces the booking document, but only while the stored revision
// still equals prev.Version. The filter makes the check and the write a single
// atomic operation, and a successful write bumps b.Version.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking, prev domain.BookingState) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoBooking(b)
	if err != nil {
		return err
	}
	doc.Version = prev.Version + 1

	res, err := r.col.ReplaceOne(ctx, saveFilter(doc.ID, prev), doc)
	if err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": doc.ID})
		if err != nil {
			return fmt.Errorf("save booking: %w", err)
		}
		if n == 0 {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("%w: booking changed concurrently", domain.ErrInvalidTransition)
	}
	b.Version = doc.Version
	return nil
}

// saveFilter matches the stored booking only at revision prev. Documents
// written before revisions existed carry no __v and count as revision 0.
func saveFilter(id primitive.ObjectID, prev domain.BookingState) bson.M {
	filter := bson.M{
		"_id":           id,
		"status":        string(prev.Status),
		"paymentStatus": string(prev.PaymentStatus),
		"__v":           prev.Version,
	}
	if prev.Version == 0 {
		filter["__v"] = bson.M{"$in": bson.A{int64(0), nil}}
	}
	return filter
}

func (r *BookingRepository) Count(ctx context.Context, f ports.BookingFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.PaymentStatus != "" {
		filter["paymentStatus"] = string(f.PaymentStatus)
	}
	return r.col.CountDocuments(ctx, filter)
}

// EnsureIndexes creates necessary indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "paymentStatus", Value: 1}}},
	})
	return err
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
