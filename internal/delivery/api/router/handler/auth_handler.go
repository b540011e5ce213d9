package handler

import (
	"net/http"
	"time"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

type loginResponse struct {
	AccessToken string            `json:"accessToken"`
	TokenType   string            `json:"tokenType"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	User        *entity.User      `json:"user"`
	Permissions entity.Permission `json:"permissions"`
}

// AuthHandler handles operator login and logout.
type AuthHandler struct {
	auth usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges credentials for an access token and opens the session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.auth.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		User:        output.User,
		Permissions: output.Permissions,
	})
}

// Logout closes the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"loggedOut": true})
}
