package usecase

import (
	"context"

	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/repository"
)

// UserUsecase exposes the user directory and the role permission matrix.
type UserUsecase interface {
	List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Permissions(role entity.Role) (entity.Permission, error)
}
