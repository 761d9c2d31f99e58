package domain

import "time"

type ContactStatus string

const (
	ContactStatusNew  ContactStatus = "new"
	ContactStatusRead ContactStatus = "read"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
