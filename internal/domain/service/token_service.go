package service

import (
	"time"

	"warehouse/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the custom claims carried by an access token.
type Claims struct {
	UserID   string      `json:"uid"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the user and returns it with its expiry.
	GenerateAccessToken(user entity.User) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
