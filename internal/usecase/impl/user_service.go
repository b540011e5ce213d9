package impl

import (
	"context"
	"log/slog"

	deliverycontext "warehouse/internal/delivery/context"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/repository"
	"warehouse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the users matching filter.
func (srv *userService) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, domainerrors.New(domainerrors.KindInvalidRole, "role", filter.Role.String())
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns one user by id.
func (srv *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.New(domainerrors.KindUserNotFound, "id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Permissions returns the fixed permission set of role.
func (srv *userService) Permissions(role entity.Role) (entity.Permission, error) {
	if !role.IsValid() {
		return entity.Permission{}, domainerrors.New(domainerrors.KindInvalidRole, "role", role.String())
	}

	return role.Permissions(), nil
}
