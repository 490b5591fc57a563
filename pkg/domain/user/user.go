package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("%w: user not found", domain.ErrNotFound)
	// ErrUserUnauthorized is returned when credentials do not resolve to a user.
	ErrUserUnauthorized = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	// ErrUserBanned is returned when a banned user tries to authenticate.
	ErrUserBanned = fmt.Errorf("%w: user banned", domain.ErrUnauthorized)
)

// User represents a farmer account in the system. Area, City and Country feed
// the location-based discovery queries; Banned users stay out of every
// discovery and listing result.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Names     string    `json:"names"`
	Area      string    `json:"area"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// New creates a User with a hashed password and current timestamps.
func New(username, email, password string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", domain.ErrValidation)
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// HasLocation reports whether the user has any location data to match
// against. Discovery returns nothing for users without it.
func (u *User) HasLocation() bool {
	return strings.TrimSpace(u.Area) != "" || strings.TrimSpace(u.City) != ""
}
