// Package memory contains in-process implementations of the persistence
// interfaces. Data lives for the lifetime of the process.
package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"warehouse/config"
	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/repository"
	"warehouse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userRepository implements repository.UserRepository with a guarded map.
type userRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{byID: map[string]*entity.User{}}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	u, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(u), nil
}

// FindByUsername retrieves a single user by username, case-insensitively.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if u := repo.findByUsername(username); u != nil {
		return clone(u), nil
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) findByUsername(username string) *entity.User {
	for _, id := range repo.order {
		if u := repo.byID[id]; strings.EqualFold(u.Username, username) {
			return u
		}
	}

	return nil
}

// List returns users matching the filter in creation order.
func (repo *userRepository) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	needle := strings.ToLower(filter.Search)
	out := make([]*entity.User, 0, len(repo.order))
	for _, id := range repo.order {
		u := repo.byID[id]
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Username), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.FullName()), needle) {
			continue
		}
		out = append(out, clone(u))
	}

	return out, nil
}

// Create persists a new user.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[user.ID]; ok {
		return errors.Wrapf(repository.ErrUserExists, "id %s", user.ID)
	}
	if repo.findByUsername(user.Username) != nil {
		return errors.Wrapf(repository.ErrUserExists, "username %s", user.Username)
	}

	repo.byID[user.ID] = clone(user)
	repo.order = append(repo.order, user.ID)

	return nil
}

// Update replaces an existing user.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	repo.byID[user.ID] = clone(user)

	return nil
}

func clone(u *entity.User) *entity.User {
	c := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}

	return &c
}

// SeedParams holds dependencies for the seeded user repository, injected by Fx.
type SeedParams struct {
	fx.In

	Config *config.Config
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewSeededUserRepository creates a repository holding the users listed in
// the seed config, with their passwords hashed.
func NewSeededUserRepository(params SeedParams) (repository.UserRepository, error) {
	repo := NewUserRepository()
	if params.Config.Seed == nil {
		return repo, nil
	}

	ctx := context.Background()
	for _, su := range params.Config.Seed.Users {
		role := entity.Role(strings.ToUpper(su.Role))
		if !role.IsValid() {
			return nil, errors.Errorf("seed user %q has unknown role %q", su.Username, su.Role)
		}

		hash, err := params.Hasher.Hash(su.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password for seed user %q", su.Username)
		}

		user := &entity.User{
			ID:           uuid.NewString(),
			Username:     su.Username,
			Email:        su.Email,
			Role:         role,
			FirstName:    su.FirstName,
			LastName:     su.LastName,
			IsActive:     true,
			PasswordHash: hash,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	params.Logger.Info("Seeded users", slog.Int("count", len(params.Config.Seed.Users)))

	return repo, nil
}

// Module provides the in-memory persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSeededUserRepository),
)
