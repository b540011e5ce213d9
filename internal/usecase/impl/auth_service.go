package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "warehouse/internal/delivery/context"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/repository"
	"warehouse/internal/domain/service"
	"warehouse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	dispatcher   usecase.Dispatcher
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Dispatcher   usecase.Dispatcher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		dispatcher:   params.Dispatcher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials, issues an access token and makes the user
// the session's current user.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.New(domainerrors.KindMissingField, "username", "username is required")
	}
	if input.Password == "" {
		return nil, domainerrors.New(domainerrors.KindMissingField, "password", "password is required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed: unknown user", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed: wrong password", slog.String("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.New(domainerrors.KindUserInactive, "username", username)
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(*user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	now := srv.now()
	user.LastLogin = &now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}

	if _, err := srv.dispatcher.Dispatch(ctx, usecase.Login{User: *user}); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		Permissions: user.Role.Permissions(),
	}, nil
}

// Logout clears the session's current user.
func (srv *authService) Logout(ctx context.Context) error {
	_, err := srv.dispatcher.Dispatch(ctx, usecase.Logout{})

	return err
}

// Authenticate resolves an access token to an active user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.New(domainerrors.KindInvalidCredentials, "token", "invalid or expired token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.New(domainerrors.KindInvalidCredentials, "token", "token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive {
		return nil, domainerrors.New(domainerrors.KindUserInactive, "token", user.Username)
	}

	return user, nil
}
