package models

import "time"

// ReservationStatus represents the status of a table reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationSeated    ReservationStatus = "SEATED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
)

// ValidReservationStatuses lists every status a reservation may be set to.
func ValidReservationStatuses() []string {
	return []string{
		string(ReservationPending), string(ReservationConfirmed),
		string(ReservationSeated), string(ReservationCompleted),
		string(ReservationCancelled), string(ReservationNoShow),
	}
}

// Valid reports whether s is a member of the reservation status set.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated,
		ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}

// Reservation is a table booking request.
type Reservation struct {
	ID              string            `json:"id"`
	UserID          *string           `json:"userId"`
	GuestName       string            `json:"guestName"`
	GuestEmail      string            `json:"guestEmail"`
	GuestPhone      string            `json:"guestPhone"`
	ReservationDate time.Time         `json:"reservationDate"`
	NumberOfGuests  int               `json:"numberOfGuests"`
	SpecialRequests *string           `json:"specialRequests"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	User *UserSummary `json:"user,omitempty"`
}

// CreateReservationRequest is the POST /api/reservations payload. The date
// is accepted as a string and parsed by the service.
type CreateReservationRequest struct {
	UserID          *string `json:"userId" validate:"omitempty,uuid"`
	GuestName       string  `json:"guestName" validate:"required,min=2,max=100"`
	GuestEmail      string  `json:"guestEmail" validate:"required,email"`
	GuestPhone      string  `json:"guestPhone" validate:"required,max=30"`
	ReservationDate string  `json:"reservationDate" validate:"required"`
	NumberOfGuests  int     `json:"numberOfGuests" validate:"required,min=1,max=20"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=1000"`
}

// ReservationFilter is the predicate built from reservation list query
// parameters. From and To are inclusive bounds on the reservation date.
type ReservationFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
}
