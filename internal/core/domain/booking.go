package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// BookingStatus represents the service lifecycle of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change is accepted.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition checks a requested status change. Asking for the current status
// again is a no-op unless the booking has already reached a terminal state.
func (s BookingStatus) Transition(next BookingStatus) error {
	if s == next && !s.Terminal() {
		return nil
	}
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: status %s to %s", ErrInvalidTransition, s, next)
	}
	return nil
}

// PaymentStatus is independent of BookingStatus.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentCompleted, PaymentFailed},
	PaymentFailed:  {PaymentPending},
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

func (p PaymentStatus) Terminal() bool {
	return p == PaymentCompleted
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (p PaymentStatus) Transition(next PaymentStatus) error {
	if p == next && !p.Terminal() {
		return nil
	}
	if !p.CanTransitionTo(next) {
		return fmt.Errorf("%w: payment %s to %s", ErrInvalidTransition, p, next)
	}
	return nil
}

type PreferredTime string

const (
	TimeMorning   PreferredTime = "Morning (9 AM - 12 PM)"
	TimeAfternoon PreferredTime = "Afternoon (12 PM - 4 PM)"
	TimeEvening   PreferredTime = "Evening (4 PM - 8 PM)"
)

func (t PreferredTime) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return true
	}
	return false
}

// Condition is the garment assessment written by an admin.
type Condition string

const (
	ConditionExcellent   Condition = "Excellent"
	ConditionGood        Condition = "Good"
	ConditionFair        Condition = "Fair"
	ConditionNeedsRepair Condition = "Needs Repair"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair:
		return true
	}
	return false
}

type HealthReport struct {
	Condition      Condition `json:"condition"`
	Notes          string    `json:"notes"`
	Recommendation string    `json:"recommendation"`
}

type BookingItem struct {
	Service  string `json:"service"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price,omitempty"`
}

// Owner is either Identified by a user id or a Guest. The zero value is Guest.
type Owner struct {
	userID string
}

func Guest() Owner { return Owner{} }

func Identified(userID string) Owner { return Owner{userID: userID} }

// UserID returns the owning user id and true, or "" and false for guests.
func (o Owner) UserID() (string, bool) {
	return o.userID, o.userID != ""
}

func (o Owner) IsGuest() bool { return o.userID == "" }

func (o Owner) String() string {
	if o.IsGuest() {
		return "guest"
	}
	return o.userID
}

// MarshalJSON renders the owner as its user id, or null for guests.
func (o Owner) MarshalJSON() ([]byte, error) {
	if o.IsGuest() {
		return []byte("null"), nil
	}
	return json.Marshal(o.userID)
}

// Booking is the core aggregate root.
type Booking struct {
	ID            string        `json:"_id"`
	User          Owner         `json:"user"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PickupDate    time.Time     `json:"pickupDate"`
	PreferredTime PreferredTime `json:"preferredTime"`
	Items         []BookingItem `json:"items"`
	TransactionID string        `json:"transactionId,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalAmount   float64       `json:"totalAmount"`
	HealthReport  *HealthReport `json:"healthReport,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	// Version is bumped by every successful save.
	Version int64 `json:"-"`
}

// State is the revision a write was computed from, plus the lifecycle axes
// at that revision.
func (b *Booking) State() BookingState {
	return BookingState{Status: b.Status, PaymentStatus: b.PaymentStatus, Version: b.Version}
}

type BookingState struct {
	Status        BookingStatus
	PaymentStatus PaymentStatus
	Version       int64
}
