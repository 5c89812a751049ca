package auth

import (
	"context"
	"testing"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetAdminByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestAuthService_Register_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByUsername", ctx, "alice").Return(false, nil).Once()
	mockRepo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil).Once()

	user, err := service.Register(ctx, "alice", "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	// The stored credential must be a hash, never the raw password.
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByUsername", ctx, "alice").Return(true, nil).Once()

	_, err := service.Register(ctx, "alice", "alice@example.com", "secret")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	service := NewAuthService(&MockUserRepository{})
	ctx := context.Background()

	_, err := service.Register(ctx, "", "alice@example.com", "secret")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = service.Register(ctx, "alice", "not-an-email", "secret")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}

	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByIdentifier", ctx, "alice@example.com").Return(user, nil).Twice()

	got, err := service.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = service.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByIdentifier", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	_, err := service.Login(ctx, "ghost", "secret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"sample@domain.com", true},
		{"a.b@sub.domain.co", true},
		{"missingat.com", false},
		{"two@@domain.com", false},
		{"@domain.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user@.com", false},
		{"user@domain.c", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidEmail(tc.email))
		})
	}
}
