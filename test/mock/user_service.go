// test/mock/user_service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tgechev/gonotes/model"
)

// MockUserService is a mock implementation of service.IUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req model.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*model.UserDTO, string, error) {
	args := m.Called(ctx, username, password)
	var user *model.UserDTO
	if args.Get(0) != nil {
		user = args.Get(0).(*model.UserDTO)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*model.UserDTO, error) {
	args := m.Called(ctx, userID)
	var user *model.UserDTO
	if args.Get(0) != nil {
		user = args.Get(0).(*model.UserDTO)
	}
	return user, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.UserDTO, error) {
	args := m.Called(ctx)
	var users []model.UserDTO
	if args.Get(0) != nil {
		users = args.Get(0).([]model.UserDTO)
	}
	return users, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req model.UpdateUserRequest) (*model.UserDTO, error) {
	args := m.Called(ctx, userID, req)
	var user *model.UserDTO
	if args.Get(0) != nil {
		user = args.Get(0).(*model.UserDTO)
	}
	return user, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
