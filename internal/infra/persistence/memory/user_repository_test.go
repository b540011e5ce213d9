package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"warehouse/config"
	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/repository"
	mockSvc "warehouse/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	admin := &entity.User{ID: "u-1", Username: "Admin", Email: "admin@example.com", Role: entity.RoleAdmin, IsActive: true}
	require.NoError(t, repo.Create(ctx, admin))

	err := repo.Create(ctx, &entity.User{ID: "u-2", Username: "admin"})
	assert.ErrorIs(t, err, repository.ErrUserExists)
	err = repo.Create(ctx, &entity.User{ID: "u-1", Username: "other"})
	assert.ErrorIs(t, err, repository.ErrUserExists)

	got, err := repo.FindByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	// Returned users are copies.
	now := time.Now()
	got.LastLogin = &now
	again, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, again.LastLogin)

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, again.LastLogin)

	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: "ghost"}), repository.ErrUserNotFound)
	_, err = repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	for _, u := range []*entity.User{
		{ID: "1", Username: "admin", Role: entity.RoleAdmin, FirstName: "System"},
		{ID: "2", Username: "staff", Role: entity.RoleStaff, Email: "depot@example.com"},
		{ID: "3", Username: "viewer", Role: entity.RoleViewer, LastName: "Karimi"},
	} {
		require.NoError(t, repo.Create(ctx, u))
	}

	tests := []struct {
		name   string
		filter repository.UserFilter
		want   []string
	}{
		{name: "no filter keeps creation order", want: []string{"1", "2", "3"}},
		{name: "by role", filter: repository.UserFilter{Role: entity.RoleStaff}, want: []string{"2"}},
		{name: "search email", filter: repository.UserFilter{Search: "DEPOT"}, want: []string{"2"}},
		{name: "search full name", filter: repository.UserFilter{Search: "karimi"}, want: []string{"3"}},
		{name: "role and search disagree", filter: repository.UserFilter{Role: entity.RoleAdmin, Search: "karimi"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(users))
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNewSeededUserRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Seed: &config.SeedConfig{Users: []config.SeedUser{
		{Username: "admin", Password: "123456", Role: "admin"},
	}}}

	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", "123456").Return("hashed-123456", nil).Once()

	repo, err := NewSeededUserRepository(SeedParams{Config: cfg, Hasher: hasher, Logger: logger})
	require.NoError(t, err)

	u, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, "hashed-123456", u.PasswordHash)
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.ID)

	cfg.Seed.Users[0].Role = "owner"
	_, err = NewSeededUserRepository(SeedParams{Config: cfg, Hasher: mockSvc.NewMockPasswordHasher(t), Logger: logger})
	assert.Error(t, err)
}
