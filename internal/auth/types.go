package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for storefront and back-office tokens
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "customer" or "admin"
	jwt.RegisteredClaims
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
