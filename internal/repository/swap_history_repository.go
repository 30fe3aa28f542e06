package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// SwapHistoryRepository records lifecycle transitions as an audit trail.
type SwapHistoryRepository interface {
	Create(ctx context.Context, entry *domain.SwapHistory) error
	ListBySwap(ctx context.Context, swapID string) ([]domain.SwapHistory, error)
}

type swapHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewSwapHistoryRepository constructs repository.
func NewSwapHistoryRepository(pool *pgxpool.Pool) SwapHistoryRepository {
	return &swapHistoryRepository{pool: pool}
}

func (r *swapHistoryRepository) Create(ctx context.Context, entry *domain.SwapHistory) error {
	const query = `
        INSERT INTO swap_history (swap_id, actor_id, action, old_status, new_status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.SwapID,
		entry.ActorID,
		entry.Action,
		entry.OldStatus,
		entry.NewStatus,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *swapHistoryRepository) ListBySwap(ctx context.Context, swapID string) ([]domain.SwapHistory, error) {
	const query = `
        SELECT id, swap_id, actor_id, action, old_status, new_status, created_at
        FROM swap_history WHERE swap_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, swapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SwapHistory
	for rows.Next() {
		var entry domain.SwapHistory
		if err := rows.Scan(
			&entry.ID,
			&entry.SwapID,
			&entry.ActorID,
			&entry.Action,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
