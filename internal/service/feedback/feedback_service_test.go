package feedback

import (
	"context"
	"testing"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Insert(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

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

func TestFeedbackService_Submit(t *testing.T) {
	mockFeedback := &MockFeedbackRepository{}
	mockUsers := &MockUserRepository{}
	service := NewFeedbackService(mockFeedback, mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByIdentifier", ctx, "alice").Return(&domain.User{ID: 7, Username: "alice"}, nil).Once()
	mockFeedback.On("Insert", ctx, mock.MatchedBy(func(f *domain.Feedback) bool {
		return f.UserID == 7 && f.Message == "great service"
	})).Return(nil).Once()

	entry, err := service.Submit(ctx, "alice", "  great service  ")

	require.NoError(t, err)
	assert.Equal(t, "great service", entry.Message)
	mockFeedback.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestFeedbackService_Submit_Empty(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{}, &MockUserRepository{})

	_, err := service.Submit(context.Background(), "alice", "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestFeedbackService_Submit_UnknownUser(t *testing.T) {
	mockFeedback := &MockFeedbackRepository{}
	mockUsers := &MockUserRepository{}
	service := NewFeedbackService(mockFeedback, mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByIdentifier", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	_, err := service.Submit(ctx, "ghost", "hello")

	assert.ErrorIs(t, err, ErrUserNotFound)
	mockFeedback.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
