package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the signed session cookie.
type SessionClaims struct {
	UserID int64    `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
