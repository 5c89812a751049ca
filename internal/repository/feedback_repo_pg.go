package repository

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *domain.Feedback) error
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}

type PGFeedbackRepository struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) FeedbackRepository {
	return &PGFeedbackRepository{db: db}
}

func (r *PGFeedbackRepository) Insert(ctx context.Context, feedback *domain.Feedback) error {
	return r.db.QueryRow(ctx, `INSERT INTO feedback (user_id, message) VALUES ($1, $2) RETURNING id, created_at`,
		feedback.UserID, feedback.Message).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *PGFeedbackRepository) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := r.db.Query(ctx, `SELECT f.id, f.user_id, u.username, u.email, f.message, f.created_at
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Username, &f.Email, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

var _ FeedbackRepository = (*PGFeedbackRepository)(nil)
