package domain

import "time"

// EventAxis names the part of a booking an event changed.
type EventAxis string

const (
	AxisCreated      EventAxis = "created"
	AxisStatus       EventAxis = "status"
	AxisPayment      EventAxis = "payment"
	AxisTotalAmount  EventAxis = "total_amount"
	AxisHealthReport EventAxis = "health_report"
)

// BookingEvent is an audit trail entry for a booking change.
type BookingEvent struct {
	BookingID string
	ActorID   string // empty for guest submissions
	Axis      EventAxis
	From      string
	To        string
	At        time.Time
}
