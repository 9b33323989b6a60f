// service/user_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/cache"
	apperrors "github.com/tgechev/gonotes/errors"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/token"
	"github.com/tgechev/gonotes/util"
)

// UserStore is the persistence boundary consumed by the user service.
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID string) error
}

// IUserService defines the interface for user operations
type IUserService interface {
	Register(ctx context.Context, req model.RegisterRequest) error
	Authenticate(ctx context.Context, username, password string) (*model.UserDTO, string, error)
	GetUser(ctx context.Context, userID string) (*model.UserDTO, error)
	ListUsers(ctx context.Context) ([]model.UserDTO, error)
	UpdateUser(ctx context.Context, userID string, req model.UpdateUserRequest) (*model.UserDTO, error)
	DeleteUser(ctx context.Context, userID string) error
}

// UserService handles business logic for account and credential operations
type UserService struct {
	store          UserStore
	validationUtil *util.ValidationUtil
	responseCache  cache.Cache
	hasher         *auth.PasswordHasher
	tokens         *token.Service
	eventBus       *util.EventBus
	cacheTTL       CacheTTL
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(
	store UserStore,
	validationUtil *util.ValidationUtil,
	responseCache cache.Cache,
	hasher *auth.PasswordHasher,
	tokens *token.Service,
	eventBus *util.EventBus,
	cacheTTL CacheTTL,
) *UserService {
	return &UserService{
		store:          store,
		validationUtil: validationUtil,
		responseCache:  responseCache,
		hasher:         hasher,
		tokens:         tokens,
		eventBus:       eventBus,
		cacheTTL:       cacheTTL,
	}
}

// Register creates an account with a hashed password. Duplicate usernames
// and emails surface as ErrUserConflict.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := s.validationUtil.ValidateRegistration(req); err != nil {
		logger.Warn("Rejected registration payload", zap.Error(err))
		return apperrors.ErrInvalidUserData
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return apperrors.ErrInternalServer
	}

	user := model.User{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.store.Create(ctx, &user); err != nil {
		return err
	}

	s.invalidateUserList(ctx)
	s.eventBus.Publish(ctx, "user.created", user.ToDTO())
	logger.Info("User registered", zap.String("userID", user.ID), zap.String("username", user.Username))
	return nil
}

// Authenticate checks the credentials and issues a fresh identity token.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.UserDTO, string, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", apperrors.ErrInvalidCredentials
	} else if err != nil {
		return nil, "", err
	}

	if !s.hasher.Compare(user.Password, password) {
		logger.Warn("Failed login attempt", zap.String("username", username))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	dto := user.ToDTO()
	signed, err := s.tokens.Issue(dto)
	if err != nil {
		logger.Error("Failed to issue token", zap.Error(err), zap.String("userID", user.ID))
		return nil, "", apperrors.ErrInternalServer
	}

	logger.Info("User logged in", zap.String("userID", user.ID))
	return &dto, signed, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.UserDTO, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := user.ToDTO()
	return &dto, nil
}

// ListUsers serves the user list through the short-TTL response cache; a hit
// skips the store entirely.
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserDTO, error) {
	dtos, _, err := cache.Remember(ctx, s.responseCache, cache.UsersKey(), s.cacheTTL.Users, func() ([]model.UserDTO, error) {
		users, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		dtos := make([]model.UserDTO, 0, len(users))
		for _, user := range users {
			dtos = append(dtos, user.ToDTO())
		}
		return dtos, nil
	})
	return dtos, err
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, req model.UpdateUserRequest) (*model.UserDTO, error) {
	if err := s.validationUtil.ValidateUserUpdate(req); err != nil {
		logger.Warn("Rejected user update payload", zap.Error(err))
		return nil, apperrors.ErrInvalidUserData
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}

	s.invalidateUserList(ctx)
	dto := user.ToDTO()
	s.eventBus.Publish(ctx, "user.updated", dto)
	return &dto, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}

	// The deleted user's cached note list must not outlive the account.
	if err := s.responseCache.Delete(ctx, cache.UsersKey(), cache.UserNotesKey(userID)); err != nil {
		logger.Warn("Failed to invalidate cache after user delete", zap.Error(err), zap.String("userID", userID))
	}
	s.eventBus.Publish(ctx, "user.deleted", userID)
	return nil
}

func (s *UserService) invalidateUserList(ctx context.Context) {
	if err := s.responseCache.Delete(ctx, cache.UsersKey()); err != nil {
		logger.Warn("Failed to invalidate user list cache", zap.Error(err))
	}
}
