package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/repository"
)

var (
	ErrEmptyMessage = errors.New("feedback message is empty")
	ErrUserNotFound = errors.New("user not found")
)

type FeedbackUseCase interface {
	Submit(ctx context.Context, identifier, message string) (*domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}

type FeedbackService struct {
	feedback repository.FeedbackRepository
	users    repository.UserRepository
}

func NewFeedbackService(feedback repository.FeedbackRepository, users repository.UserRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback, users: users}
}

func (s *FeedbackService) Submit(ctx context.Context, identifier, message string) (*domain.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	entry := &domain.Feedback{UserID: user.ID, Username: user.Username, Email: user.Email, Message: message}
	if err := s.feedback.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return entry, nil
}

func (s *FeedbackService) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.ListAll(ctx)
}

var _ FeedbackUseCase = (*FeedbackService)(nil)
