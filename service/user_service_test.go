// service/user_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/cache"
	apperrors "github.com/tgechev/gonotes/errors"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/service"
	"github.com/tgechev/gonotes/token"
	"github.com/tgechev/gonotes/util"
)

type fakeUserStore struct {
	users     map[string]model.User
	listCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, userID string) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	f.listCalls++
	users := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username || (user.Email != "" && existing.Email == user.Email) {
			return apperrors.ErrUserConflict
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

type userServiceFixture struct {
	svc           *service.UserService
	store         *fakeUserStore
	responseCache *cache.Memory
	tokens        *token.Service
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()
	logger.InitLogger(t.TempDir())

	store := newFakeUserStore()
	responseCache := cache.NewMemory()
	t.Cleanup(responseCache.Close)

	tokens, err := token.NewService("user-service-test-secret", time.Hour)
	require.NoError(t, err)

	svc := service.NewUserService(
		store,
		util.NewValidationUtil(),
		responseCache,
		auth.NewPasswordHasher(),
		tokens,
		util.NewEventBus(),
		service.CacheTTL{Notes: 10 * time.Second, Users: 10 * time.Second},
	)
	return &userServiceFixture{svc: svc, store: store, responseCache: responseCache, tokens: tokens}
}

func (f *userServiceFixture) register(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, f.svc.Register(context.Background(), model.RegisterRequest{
		Username: username,
		Password: username + ".password",
		FullName: "Test User",
		Email:    username + "@example.com",
	}))
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPassword", func(t *testing.T) {
		fixture := newUserServiceFixture(t)
		fixture.register(t, "test.user")

		stored, err := fixture.store.GetByUsername(ctx, "test.user")
		require.NoError(t, err)
		assert.NotEqual(t, "test.user.password", stored.Password)
		assert.True(t, auth.NewPasswordHasher().Compare(stored.Password, "test.user.password"))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		fixture := newUserServiceFixture(t)
		fixture.register(t, "test.user")

		err := fixture.svc.Register(ctx, model.RegisterRequest{
			Username: "test.user",
			Password: "other",
			Email:    "other@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserConflict)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		fixture := newUserServiceFixture(t)

		err := fixture.svc.Register(ctx, model.RegisterRequest{
			Username: "test.user",
			Password: "pw",
			Email:    "not-an-email",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserData)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		fixture := newUserServiceFixture(t)

		err := fixture.svc.Register(ctx, model.RegisterRequest{
			Username: "test.user",
			Password: "pw",
			Role:     "superuser",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserData)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	fixture := newUserServiceFixture(t)
	fixture.register(t, "test.user")

	t.Run("Success", func(t *testing.T) {
		user, signed, err := fixture.svc.Authenticate(ctx, "test.user", "test.user.password")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "test.user", user.Username)

		identity, err := fixture.tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, model.RoleUser, identity.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := fixture.svc.Authenticate(ctx, "test.user", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UnknownUserGetsSameError", func(t *testing.T) {
		_, _, err := fixture.svc.Authenticate(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUserService_ListUsersCaching(t *testing.T) {
	ctx := context.Background()
	fixture := newUserServiceFixture(t)
	fixture.register(t, "test.user")

	users, err := fixture.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	_, err = fixture.svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixture.store.listCalls, "second read must be served from cache")

	// A registration drops the cached listing; the next read sees the new user.
	fixture.register(t, "second.user")
	users, err = fixture.svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, fixture.store.listCalls)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	fixture := newUserServiceFixture(t)
	fixture.register(t, "test.user")

	stored, err := fixture.store.GetByUsername(ctx, "test.user")
	require.NoError(t, err)

	_, err = fixture.svc.ListUsers(ctx)
	require.NoError(t, err)

	updated, err := fixture.svc.UpdateUser(ctx, stored.ID, model.UpdateUserRequest{FullName: "Renamed User"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", updated.FullName)
	assert.Equal(t, "test.user@example.com", updated.Email, "empty fields are left untouched")

	users, err := fixture.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Renamed User", users[0].FullName)

	_, err = fixture.svc.UpdateUser(ctx, "missing", model.UpdateUserRequest{FullName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	fixture := newUserServiceFixture(t)
	fixture.register(t, "test.user")

	stored, err := fixture.store.GetByUsername(ctx, "test.user")
	require.NoError(t, err)

	// Simulate a warm note listing for the account being removed.
	require.NoError(t, fixture.responseCache.Put(ctx, cache.UserNotesKey(stored.ID), []byte(`[]`), time.Minute))

	require.NoError(t, fixture.svc.DeleteUser(ctx, stored.ID))

	_, err = fixture.svc.GetUser(ctx, stored.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	cached, err := fixture.responseCache.Has(ctx, cache.UserNotesKey(stored.ID))
	require.NoError(t, err)
	assert.False(t, cached, "the deleted user's cached notes must not outlive the account")

	err = fixture.svc.DeleteUser(ctx, stored.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
