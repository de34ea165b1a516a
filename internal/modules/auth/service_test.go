package auth

import (
	"context"
	"testing"

	"societyhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, userID int64, passwordHash string, mustChange bool) error {
	args := m.Called(ctx, userID, passwordHash, mustChange)
	return args.Error(0)
}

func (m *MockUserRepository) GetResetRequestByID(ctx context.Context, id int64) (*domain.PasswordResetRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetRequest), args.Error(1)
}

func (m *MockUserRepository) ResolveResetRequest(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string, unitID *int64) (string, error) {
	return "token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	unit := int64(42)
	users.On("GetByEmail", mock.Anything, "resident1@societyhub.in").Return(&domain.User{
		ID:                 9,
		Email:              "resident1@societyhub.in",
		PasswordHash:       hashOf(t, "resident123"),
		Role:               domain.RoleResident,
		UnitID:             &unit,
		MustChangePassword: true,
	}, nil)

	service := NewService(users, stubJWT{})

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "resident1@societyhub.in",
		Password: "resident123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
	assert.True(t, res.MustChangePassword)
	assert.Equal(t, int64(9), res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "resident1@societyhub.in").Return(&domain.User{
		ID:           9,
		PasswordHash: hashOf(t, "resident123"),
	}, nil)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "resident1@societyhub.in",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@societyhub.in").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@societyhub.in",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetUserPassword_TooShort(t *testing.T) {
	service := NewService(new(MockUserRepository), stubJWT{})

	err := service.SetUserPassword(context.Background(), SetPasswordRequest{
		UserID:   9,
		Password: "abc",
	})

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSetUserPassword_UserNotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubJWT{})

	err := service.SetUserPassword(context.Background(), SetPasswordRequest{
		UserID:   9,
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetUserPassword_ForcesChangeOnNextLogin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	users.On("SetPassword", mock.Anything, int64(9), mock.Anything, true).Return(nil)

	service := NewService(users, stubJWT{})

	err := service.SetUserPassword(context.Background(), SetPasswordRequest{
		UserID:   9,
		Password: "secret1",
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestSetUserPassword_ResolvesResetRequest(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	users.On("SetPassword", mock.Anything, int64(9), mock.Anything, true).Return(nil)
	users.On("GetResetRequestByID", mock.Anything, int64(3)).Return(
		&domain.PasswordResetRequest{ID: 3, UserID: 9, Status: domain.ResetPending}, nil)
	users.On("ResolveResetRequest", mock.Anything, int64(3)).Return(nil)

	service := NewService(users, stubJWT{})

	resetID := int64(3)
	err := service.SetUserPassword(context.Background(), SetPasswordRequest{
		UserID:         9,
		Password:       "secret1",
		ResetRequestID: &resetID,
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}
