package model

import (
	"errors"
	"time"
)

// User represents an account. The password hash and profile picture metadata
// never serialize to JSON.
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	IsAdmin            bool      `json:"isAdmin"`
	ProfilePictureMime string    `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ValidateUsername enforces the username rules: 7-20 characters, lowercase,
// letters and digits only.
func ValidateUsername(username string) error {
	if len(username) < 7 || len(username) > 20 {
		return errors.New("Username must be between 7 and 20 characters")
	}
	for _, c := range username {
		switch {
		case c == ' ':
			return errors.New("Username cannot contain spaces")
		case c >= 'A' && c <= 'Z':
			return errors.New("Username must be lowercase")
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return errors.New("Username must contain only letters and numbers")
		}
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}
