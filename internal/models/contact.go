package models

import "time"

// ContactStatus represents the handling state of a contact message.
type ContactStatus string

const (
	ContactNew      ContactStatus = "NEW"
	ContactRead     ContactStatus = "READ"
	ContactReplied  ContactStatus = "REPLIED"
	ContactArchived ContactStatus = "ARCHIVED"
)

// ValidContactStatuses lists every status a contact message may be set to.
func ValidContactStatuses() []string {
	return []string{
		string(ContactNew), string(ContactRead),
		string(ContactReplied), string(ContactArchived),
	}
}

// Valid reports whether s is a member of the contact status set.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied, ContactArchived:
		return true
	}
	return false
}

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateContactRequest is the POST /api/contact payload.
type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}
