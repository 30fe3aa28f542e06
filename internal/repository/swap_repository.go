package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// SwapFilter captures listing parameters.
type SwapFilter struct {
	RequesterID   *string
	ProviderID    *string
	ParticipantID *string
	Status        *domain.SwapStatus
	Limit         int
	Offset        int
}

// SwapRepository encapsulates swap persistence.
type SwapRepository interface {
	Create(ctx context.Context, swap *domain.Swap) error
	Update(ctx context.Context, swap *domain.Swap) error
	GetByID(ctx context.Context, id string) (*domain.Swap, error)
	Delete(ctx context.Context, id string) error
	ListWithFilter(ctx context.Context, filter SwapFilter) ([]domain.Swap, error)
	ExistsPendingDuplicate(ctx context.Context, swap *domain.Swap) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.SwapStatus]int64, error)
	CountDistinctParticipants(ctx context.Context) (int64, error)
}

type swapRepository struct {
	pool *pgxpool.Pool
}

// NewSwapRepository instantiates repository.
func NewSwapRepository(pool *pgxpool.Pool) SwapRepository {
	return &swapRepository{pool: pool}
}

const swapColumns = `id, requester_id, provider_id, skill_offered_id, skill_wanted_id,
       message, status, created_at, updated_at, completed_at`

func (r *swapRepository) Create(ctx context.Context, swap *domain.Swap) error {
	const query = `
        INSERT INTO swaps (requester_id, provider_id, skill_offered_id, skill_wanted_id, message, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		swap.RequesterID,
		swap.ProviderID,
		swap.SkillOfferedID,
		swap.SkillWantedID,
		swap.Message,
		swap.Status,
	).Scan(&swap.ID, &swap.CreatedAt, &swap.UpdatedAt)
}

func (r *swapRepository) Update(ctx context.Context, swap *domain.Swap) error {
	const query = `
        UPDATE swaps SET message=$1, status=$2, completed_at=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		swap.Message,
		swap.Status,
		swap.CompletedAt,
		swap.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id string) (*domain.Swap, error) {
	var swap domain.Swap
	if err := r.pool.QueryRow(ctx, `SELECT `+swapColumns+` FROM swaps WHERE id=$1`, id).Scan(
		&swap.ID,
		&swap.RequesterID,
		&swap.ProviderID,
		&swap.SkillOfferedID,
		&swap.SkillWantedID,
		&swap.Message,
		&swap.Status,
		&swap.CreatedAt,
		&swap.UpdatedAt,
		&swap.CompletedAt,
	); err != nil {
		return nil, err
	}
	return &swap, nil
}

func (r *swapRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM swaps WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *swapRepository) ListWithFilter(ctx context.Context, filter SwapFilter) ([]domain.Swap, error) {
	base := `SELECT ` + swapColumns + ` FROM swaps`
	clauses := []string{"1=1"}
	args := []any{}
	idx := 1

	if filter.RequesterID != nil {
		clauses = append(clauses, fmt.Sprintf("requester_id=$%d", idx))
		args = append(args, *filter.RequesterID)
		idx++
	}
	if filter.ProviderID != nil {
		clauses = append(clauses, fmt.Sprintf("provider_id=$%d", idx))
		args = append(args, *filter.ProviderID)
		idx++
	}
	if filter.ParticipantID != nil {
		clauses = append(clauses, fmt.Sprintf("(requester_id=$%d OR provider_id=$%d)", idx, idx))
		args = append(args, *filter.ParticipantID)
		idx++
	}
	if filter.Status != nil {
		clauses = append(clauses, fmt.Sprintf("status=$%d", idx))
		args = append(args, *filter.Status)
		idx++
	}

	query := base + " WHERE " + strings.Join(clauses, " AND ") + " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Swap
	for rows.Next() {
		var swap domain.Swap
		if err := rows.Scan(
			&swap.ID,
			&swap.RequesterID,
			&swap.ProviderID,
			&swap.SkillOfferedID,
			&swap.SkillWantedID,
			&swap.Message,
			&swap.Status,
			&swap.CreatedAt,
			&swap.UpdatedAt,
			&swap.CompletedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, swap)
	}
	return result, rows.Err()
}

// ExistsPendingDuplicate checks for an open request between the same pair
// over the same skills.
func (r *swapRepository) ExistsPendingDuplicate(ctx context.Context, swap *domain.Swap) (bool, error) {
	const query = `
        SELECT COUNT(*) FROM swaps
        WHERE requester_id=$1 AND provider_id=$2
          AND skill_offered_id IS NOT DISTINCT FROM $3
          AND skill_wanted_id IS NOT DISTINCT FROM $4
          AND status='pending'`
	var count int
	if err := r.pool.QueryRow(ctx, query,
		swap.RequesterID,
		swap.ProviderID,
		swap.SkillOfferedID,
		swap.SkillWantedID,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *swapRepository) CountByStatus(ctx context.Context) (map[domain.SwapStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM swaps GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.SwapStatus]int64)
	for rows.Next() {
		var status domain.SwapStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *swapRepository) CountDistinctParticipants(ctx context.Context) (int64, error) {
	const query = `
        SELECT COUNT(DISTINCT user_id) FROM (
            SELECT requester_id AS user_id FROM swaps
            UNION ALL
            SELECT provider_id FROM swaps
        ) participants`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
