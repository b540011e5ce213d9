package handler

import (
	"net/http"
	"strings"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type sessionView struct {
	User        *entity.User       `json:"user"`
	Page        entity.Page        `json:"page"`
	Permissions *entity.Permission `json:"permissions,omitempty"`
}

type setPageRequest struct {
	Page string `json:"page" validate:"required"`
}

// SessionHandler exposes the current session: who is logged in and which
// page is open.
type SessionHandler struct {
	dispatcher usecase.Dispatcher
	users      usecase.UserUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(dispatcher usecase.Dispatcher, users usecase.UserUsecase) *SessionHandler {
	return &SessionHandler{dispatcher: dispatcher, users: users}
}

func (h *SessionHandler) view(snap usecase.Snapshot) sessionView {
	v := sessionView{User: snap.CurrentUser, Page: snap.CurrentPage}
	if snap.CurrentUser != nil {
		if perms, err := h.users.Permissions(snap.CurrentUser.Role); err == nil {
			v.Permissions = &perms
		}
	}

	return v
}

// Get returns the current session.
func (h *SessionHandler) Get(c echo.Context) error {
	snap := h.dispatcher.Snapshot()

	return versioned(c, http.StatusOK, h.view(snap), snap.Version)
}

// SetPage navigates the session to another page.
func (h *SessionHandler) SetPage(c echo.Context) error {
	var req setPageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid page input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	page := entity.Page(strings.ToLower(strings.TrimSpace(req.Page)))
	result, err := dispatch(c, h.dispatcher, usecase.SetPage{Page: page})
	if err != nil {
		return errors.WithStack(err)
	}

	return versioned(c, http.StatusOK, h.view(result.Snapshot), result.Version)
}
