package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

const (
	maxUsernameLen = 55
	minPasswordLen = 5
	maxNameLen     = 100
)

// User is the persisted user record. PasswordHash never serializes.
type User struct {
	Username     string  `json:"username"             db:"username"`
	PasswordHash string  `json:"-"                    db:"password"`
	FirstName    *string `json:"first_name,omitempty" db:"first_name"`
	LastName     *string `json:"last_name,omitempty"  db:"last_name"`
	Email        *string `json:"email,omitempty"      db:"email"`
	PhotoURL     *string `json:"photo_url,omitempty"  db:"photo_url"`
	IsAdmin      bool    `json:"is_admin"             db:"is_admin"`
}

// UserSummary is the listing shape; it omits admin flag and photo.
type UserSummary struct {
	Username  string  `json:"username"             db:"username"`
	FirstName *string `json:"first_name,omitempty" db:"first_name"`
	LastName  *string `json:"last_name,omitempty"  db:"last_name"`
	Email     *string `json:"email,omitempty"      db:"email"`
}

// RegisterUserRequest carries input for user registration. The admin flag is
// deliberately absent: it can only be granted out of band.
type RegisterUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`

	Token string `json:"_token,omitempty"`
}

// Validate checks required fields and bounds, collecting every failure.
func (r *RegisterUserRequest) Validate() error {
	var msgs []string
	if strings.TrimSpace(r.Username) == "" {
		msgs = append(msgs, "username is required")
	}
	if utf8.RuneCountInString(r.Username) > maxUsernameLen {
		msgs = append(msgs, "username cannot exceed 55 characters")
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		msgs = append(msgs, "password must be at least 5 characters")
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			msgs = append(msgs, "email must be a valid address")
		}
	}
	if r.FirstName != nil && utf8.RuneCountInString(*r.FirstName) > maxNameLen {
		msgs = append(msgs, "first_name cannot exceed 100 characters")
	}
	if r.LastName != nil && utf8.RuneCountInString(*r.LastName) > maxNameLen {
		msgs = append(msgs, "last_name cannot exceed 100 characters")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}

// UpdateUserRequest carries a sparse update. Nil fields are untouched.
// Password, when present, is re-hashed by the service before it reaches the
// data layer.
type UpdateUserRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`

	Token string `json:"_token,omitempty"`
}

// Validate checks the provided fields, collecting every failure.
func (r *UpdateUserRequest) Validate() error {
	var msgs []string
	if r.Password != nil && utf8.RuneCountInString(*r.Password) < minPasswordLen {
		msgs = append(msgs, "password must be at least 5 characters")
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			msgs = append(msgs, "email must be a valid address")
		}
	}
	if r.FirstName != nil && utf8.RuneCountInString(*r.FirstName) > maxNameLen {
		msgs = append(msgs, "first_name cannot exceed 100 characters")
	}
	if r.LastName != nil && utf8.RuneCountInString(*r.LastName) > maxNameLen {
		msgs = append(msgs, "last_name cannot exceed 100 characters")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}

// LoginRequest carries credentials for token issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	Token string `json:"_token,omitempty"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	var msgs []string
	if strings.TrimSpace(r.Username) == "" {
		msgs = append(msgs, "username is required")
	}
	if r.Password == "" {
		msgs = append(msgs, "password is required")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}
