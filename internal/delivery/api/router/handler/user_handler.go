package handler

import (
	"net/http"
	"strings"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/repository"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type userListRequest struct {
	Role   string `query:"role"`
	Search string `query:"search"`
}

// UserHandler serves the operator directory.
type UserHandler struct {
	users usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(users usecase.UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List returns the users matching the role and search filters.
func (h *UserHandler) List(c echo.Context) error {
	var req userListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user filter")
	}

	users, err := h.users.List(c.Request().Context(), repository.UserFilter{
		Role:   entity.Role(strings.ToUpper(strings.TrimSpace(req.Role))),
		Search: strings.TrimSpace(req.Search),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// Get returns one user.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
