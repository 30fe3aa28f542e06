package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// SkillOfferedRepository persists skills members advertise.
type SkillOfferedRepository interface {
	Create(ctx context.Context, skill *domain.SkillOffered) error
	Update(ctx context.Context, skill *domain.SkillOffered) error
	GetByID(ctx context.Context, id string) (*domain.SkillOffered, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SkillOffered, error)
	ListByStatus(ctx context.Context, status domain.SkillStatus) ([]domain.SkillOffered, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.SkillSearchResult, error)
	Count(ctx context.Context) (int64, error)
}

// SkillWantedRepository persists skills members are looking for.
type SkillWantedRepository interface {
	Create(ctx context.Context, skill *domain.SkillWanted) error
	Update(ctx context.Context, skill *domain.SkillWanted) error
	GetByID(ctx context.Context, id string) (*domain.SkillWanted, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SkillWanted, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.SkillSearchResult, error)
	Count(ctx context.Context) (int64, error)
}

type skillOfferedRepository struct {
	pool *pgxpool.Pool
}

// NewSkillOfferedRepository returns a Postgres-backed implementation.
func NewSkillOfferedRepository(pool *pgxpool.Pool) SkillOfferedRepository {
	return &skillOfferedRepository{pool: pool}
}

func (r *skillOfferedRepository) Create(ctx context.Context, skill *domain.SkillOffered) error {
	const query = `
        INSERT INTO skills_offered (user_id, name, description, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		skill.UserID,
		skill.Name,
		skill.Description,
		skill.Status,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

func (r *skillOfferedRepository) Update(ctx context.Context, skill *domain.SkillOffered) error {
	const query = `
        UPDATE skills_offered SET name=$1, description=$2, status=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, skill.Name, skill.Description, skill.Status, skill.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *skillOfferedRepository) GetByID(ctx context.Context, id string) (*domain.SkillOffered, error) {
	const query = `
        SELECT id, user_id, name, description, status, created_at, updated_at
        FROM skills_offered WHERE id=$1`
	var skill domain.SkillOffered
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&skill.ID,
		&skill.UserID,
		&skill.Name,
		&skill.Description,
		&skill.Status,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillOfferedRepository) ListByUser(ctx context.Context, userID string) ([]domain.SkillOffered, error) {
	const query = `
        SELECT id, user_id, name, description, status, created_at, updated_at
        FROM skills_offered WHERE user_id=$1 ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, userID)
}

func (r *skillOfferedRepository) ListByStatus(ctx context.Context, status domain.SkillStatus) ([]domain.SkillOffered, error) {
	const query = `
        SELECT id, user_id, name, description, status, created_at, updated_at
        FROM skills_offered WHERE status=$1 ORDER BY created_at ASC`
	return r.fetchMany(ctx, query, status)
}

func (r *skillOfferedRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skills_offered WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Search matches approved offered skills of active, unbanned members.
func (r *skillOfferedRepository) Search(ctx context.Context, query string) ([]domain.SkillSearchResult, error) {
	const q = `
        SELECT s.id, s.name, s.description, u.id, u.username, u.name
        FROM skills_offered s
        JOIN users u ON u.id = s.user_id
        WHERE s.name ILIKE '%'||$1||'%'
          AND s.status = 'approved'
          AND u.is_active = TRUE AND u.is_banned = FALSE
        ORDER BY s.name ASC`
	return fetchSearchResults(ctx, r.pool, q, domain.SkillTypeOffered, query)
}

func (r *skillOfferedRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills_offered`).Scan(&count)
	return count, err
}

func (r *skillOfferedRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.SkillOffered, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SkillOffered
	for rows.Next() {
		var skill domain.SkillOffered
		if err := rows.Scan(
			&skill.ID,
			&skill.UserID,
			&skill.Name,
			&skill.Description,
			&skill.Status,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, skill)
	}
	return result, rows.Err()
}

type skillWantedRepository struct {
	pool *pgxpool.Pool
}

// NewSkillWantedRepository returns a Postgres-backed implementation.
func NewSkillWantedRepository(pool *pgxpool.Pool) SkillWantedRepository {
	return &skillWantedRepository{pool: pool}
}

func (r *skillWantedRepository) Create(ctx context.Context, skill *domain.SkillWanted) error {
	const query = `
        INSERT INTO skills_wanted (user_id, name, description)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		skill.UserID,
		skill.Name,
		skill.Description,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

func (r *skillWantedRepository) Update(ctx context.Context, skill *domain.SkillWanted) error {
	const query = `
        UPDATE skills_wanted SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, skill.Name, skill.Description, skill.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *skillWantedRepository) GetByID(ctx context.Context, id string) (*domain.SkillWanted, error) {
	const query = `
        SELECT id, user_id, name, description, created_at, updated_at
        FROM skills_wanted WHERE id=$1`
	var skill domain.SkillWanted
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&skill.ID,
		&skill.UserID,
		&skill.Name,
		&skill.Description,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillWantedRepository) ListByUser(ctx context.Context, userID string) ([]domain.SkillWanted, error) {
	const query = `
        SELECT id, user_id, name, description, created_at, updated_at
        FROM skills_wanted WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SkillWanted
	for rows.Next() {
		var skill domain.SkillWanted
		if err := rows.Scan(
			&skill.ID,
			&skill.UserID,
			&skill.Name,
			&skill.Description,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, skill)
	}
	return result, rows.Err()
}

func (r *skillWantedRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skills_wanted WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Search matches wanted skills of active, unbanned members. Wanted skills are
// not moderated, so there is no status restriction.
func (r *skillWantedRepository) Search(ctx context.Context, query string) ([]domain.SkillSearchResult, error) {
	const q = `
        SELECT s.id, s.name, s.description, u.id, u.username, u.name
        FROM skills_wanted s
        JOIN users u ON u.id = s.user_id
        WHERE s.name ILIKE '%'||$1||'%'
          AND u.is_active = TRUE AND u.is_banned = FALSE
        ORDER BY s.name ASC`
	return fetchSearchResults(ctx, r.pool, q, domain.SkillTypeWanted, query)
}

func (r *skillWantedRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills_wanted`).Scan(&count)
	return count, err
}

func fetchSearchResults(ctx context.Context, pool *pgxpool.Pool, query string, skillType domain.SkillType, term string) ([]domain.SkillSearchResult, error) {
	rows, err := pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SkillSearchResult
	for rows.Next() {
		hit := domain.SkillSearchResult{SkillType: skillType}
		if err := rows.Scan(
			&hit.SkillID,
			&hit.Name,
			&hit.Description,
			&hit.UserID,
			&hit.Username,
			&hit.DisplayName,
		); err != nil {
			return nil, err
		}
		result = append(result, hit)
	}
	return result, rows.Err()
}
