package middleware

import (
	"strings"

	deliverycontext "warehouse/internal/delivery/context"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the bearer token of a request to an operator.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects requests without a valid access token and stores the
// operator on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.New(domainerrors.KindInvalidCredentials, "token", "bearer token is missing")
		}

		user, err := m.auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
