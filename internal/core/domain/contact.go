package domain

import "time"

type ContactStatus string

const (
	ContactNew     ContactStatus = "New"
	ContactReplied ContactStatus = "Replied"
)

func (s ContactStatus) Valid() bool {
	return s == ContactNew || s == ContactReplied
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string        `json:"_id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
