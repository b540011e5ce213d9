package usecase

import (
	"context"
	"time"

	"warehouse/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
	Permissions entity.Permission
}

// AuthUsecase authenticates operators and drives the session's login state.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context) error
	// Authenticate resolves an access token to an active user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
