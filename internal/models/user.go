package models

import "time"

// User is a registered customer. OrderCount and ReservationCount are derived
// at query time, not stored.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrderCount       int `json:"orderCount"`
	ReservationCount int `json:"reservationCount"`
}

// UserSummary is the slim projection embedded in order and reservation
// responses.
type UserSummary struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// CreateUserRequest is the POST /api/users payload.
type CreateUserRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}
