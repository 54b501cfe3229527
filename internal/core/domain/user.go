package domain

import (
	"errors"
	"time"
)

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

var ErrDuplicateEmail = errors.New("user with this email already exists")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrMissingBusinessName = errors.New("business name is required for vendor registration")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// ValidRole reports whether role is one of the allowed account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleVendor || role == RoleAdmin
}

// User models a registered account. Accounts are created at registration and
// never mutated or deleted afterwards. BusinessName is set only for vendors.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	BusinessName string    `json:"business_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
