package models

import (
	"fmt"
	"time"
)

// UserRole is the closed set of roles a user may hold.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// ParseUserRole maps a stored role string onto a known role.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown user role %q", raw)
	}
}

// IsAdmin reports whether the role grants back-office access.
func (r UserRole) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleStudent:
		return false
	default:
		return false
	}
}

// User represents an application user stored in the users table.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user holds a known admin role.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	role, err := ParseUserRole(string(u.Role))
	if err != nil {
		return false
	}
	return role.IsAdmin()
}
