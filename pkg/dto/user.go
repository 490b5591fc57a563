package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username" validate:"required,min=3,max=50"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password,omitempty" validate:"required,min=6"`
	Names    string    `json:"names,omitempty"`
	Area     string    `json:"area,omitempty"`
	City     string    `json:"city,omitempty"`
	Country  string    `json:"country,omitempty"`
}

// UserUpdate represents the data that can be updated for a user. Nil fields
// are left untouched.
type UserUpdate struct {
	Names   *string `json:"names,omitempty"`
	Area    *string `json:"area,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	Banned  *bool   `json:"banned,omitempty"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Email          string    `json:"email"`
	Names          string    `json:"names,omitempty"`
	Area           string    `json:"area,omitempty"`
	City           string    `json:"city,omitempty"`
	Country        string    `json:"country,omitempty"`
	Banned         bool      `json:"banned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MatchedUser is a discovery result: a user plus their connection state
// relative to the viewer. Status and Direction are empty when the two users
// are unrelated.
type MatchedUser struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Names        string     `json:"names,omitempty"`
	Area         string     `json:"area,omitempty"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	Status       string     `json:"connection_status,omitempty"`
	Direction    string     `json:"request_direction,omitempty"`
	ConnectionID *uuid.UUID `json:"connection_id,omitempty"`
}
