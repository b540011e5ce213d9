// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the application layer and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"warehouse/internal/domain/entity"
)

// ErrUserNotFound is returned when a user lookup has no match.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when creating a user whose id or username is taken.
var ErrUserExists = errors.New("user already exists")

// UserFilter narrows a user listing. Zero fields do not filter.
type UserFilter struct {
	Role   entity.Role
	Search string // Case-insensitive match on username, email or full name.
}

// UserRepository stores dashboard operators.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a single user by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns users matching the filter in creation order.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces an existing user.
	Update(ctx context.Context, user *entity.User) error
}
