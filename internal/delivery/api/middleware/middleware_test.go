package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/delivery/api/validator"
	deliverycontext "warehouse/internal/delivery/context"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	usecase.AuthUsecase
	user *entity.User
	err  error
	seen string
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*entity.User, error) {
	s.seen = token

	return s.user, s.err
}

type errorBody struct {
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details []ErrorDetails `json:"details"`
	} `json:"error"`
	Meta response.MetaInfo `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	type validated struct {
		Name string `json:"name" validate:"required"`
	}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails []ErrorDetails
	}{
		{
			name:        "ledger error with field",
			err:         errors.WithStack(domainerrors.New(domainerrors.KindInsufficientStock, "quantity", "available 3, requested 5")),
			wantStatus:  http.StatusConflict,
			wantCode:    "INSUFFICIENT_STOCK",
			wantDetails: []ErrorDetails{{Field: "quantity", Detail: "available 3, requested 5"}},
		},
		{
			name:       "unauthorized hides details",
			err:        domainerrors.New(domainerrors.KindInvalidCredentials, "token", "expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "malformed command is a 500",
			err:        errors.WithStack(domainerrors.New(domainerrors.KindMalformedCommand, "", "nil command")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "MALFORMED_COMMAND",
		},
		{
			name:        "validation failure",
			err:         validator.New().Validate(&validated{}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: []ErrorDetails{{Field: "name", Rule: "required"}},
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: "u-1", Username: "admin", Role: entity.RoleAdmin, IsActive: true}

	tests := []struct {
		name      string
		header    string
		auth      *stubAuth
		wantErr   *domainerrors.LedgerError
		wantToken string
	}{
		{name: "valid token", header: "Bearer tok-1", auth: &stubAuth{user: user}, wantToken: "tok-1"},
		{name: "missing header", auth: &stubAuth{}, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "wrong scheme", header: "Basic abc", auth: &stubAuth{}, wantErr: domainerrors.ErrInvalidCredentials},
		{
			name:      "inactive user",
			header:    "Bearer tok-2",
			auth:      &stubAuth{err: domainerrors.New(domainerrors.KindUserInactive, "", "")},
			wantErr:   domainerrors.ErrUserInactive,
			wantToken: "tok-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := NewAuthMiddleware(tt.auth).Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetUser(c)
				assert.True(t, ok)
				assert.Equal(t, user, got)

				return nil
			})(c)

			assert.Equal(t, tt.wantToken, tt.auth.seen)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
