package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// FeedbackRepository persists immutable feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	ExistsForGiver(ctx context.Context, swapID, giverID string) (bool, error)
	ListBySwap(ctx context.Context, swapID string) ([]domain.Feedback, error)
	ListByGiver(ctx context.Context, giverID string) ([]domain.Feedback, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]domain.Feedback, error)
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository constructs repository.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (swap_id, giver_id, receiver_id, rating, comment)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		feedback.SwapID,
		feedback.GiverID,
		feedback.ReceiverID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) ExistsForGiver(ctx context.Context, swapID, giverID string) (bool, error) {
	const query = `SELECT id FROM feedback WHERE swap_id=$1 AND giver_id=$2`
	var id string
	err := r.pool.QueryRow(ctx, query, swapID, giverID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *feedbackRepository) ListBySwap(ctx context.Context, swapID string) ([]domain.Feedback, error) {
	const query = `
        SELECT id, swap_id, giver_id, receiver_id, rating, comment, created_at
        FROM feedback WHERE swap_id=$1 ORDER BY created_at ASC`
	return r.fetchMany(ctx, query, swapID)
}

func (r *feedbackRepository) ListByGiver(ctx context.Context, giverID string) ([]domain.Feedback, error) {
	const query = `
        SELECT id, swap_id, giver_id, receiver_id, rating, comment, created_at
        FROM feedback WHERE giver_id=$1 ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, giverID)
}

func (r *feedbackRepository) ListByReceiver(ctx context.Context, receiverID string) ([]domain.Feedback, error) {
	const query = `
        SELECT id, swap_id, giver_id, receiver_id, rating, comment, created_at
        FROM feedback WHERE receiver_id=$1 ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, receiverID)
}

func (r *feedbackRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.SwapID,
			&feedback.GiverID,
			&feedback.ReceiverID,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}
