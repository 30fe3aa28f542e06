package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// UserRepository defines persistence access for members.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	SearchPublic(ctx context.Context, query string) ([]domain.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountActiveUnbanned(ctx context.Context) (int64, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, username, name, password_hash, location, bio, photo_url,
       availability, visibility, role, is_active, is_banned, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, username, name, password_hash, location, bio, photo_url, availability, visibility, role)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.Location,
		user.Bio,
		user.PhotoURL,
		user.Availability,
		user.Visibility,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, username=$2, name=$3, password_hash=$4, location=$5, bio=$6,
            photo_url=$7, availability=$8, visibility=$9, role=$10, is_active=$11, is_banned=$12,
            updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.Location,
		user.Bio,
		user.PhotoURL,
		user.Availability,
		user.Visibility,
		user.Role,
		user.Active,
		user.Banned,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Location,
		&user.Bio,
		&user.PhotoURL,
		&user.Availability,
		&user.Visibility,
		&user.Role,
		&user.Active,
		&user.Banned,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	return r.fetchMany(ctx, query, args...)
}

func (r *userRepository) SearchPublic(ctx context.Context, query string) ([]domain.User, error) {
	base := `SELECT ` + userColumns + ` FROM users
             WHERE visibility='public' AND is_active=TRUE AND is_banned=FALSE`
	if query == "" {
		return r.fetchMany(ctx, base+` ORDER BY created_at DESC`)
	}
	return r.fetchMany(ctx,
		base+` AND (name ILIKE '%'||$1||'%' OR username ILIKE '%'||$1||'%') ORDER BY created_at DESC`,
		query)
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) CountActiveUnbanned(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active=TRUE AND is_banned=FALSE`).Scan(&count)
	return count, err
}

func (r *userRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Username,
			&user.Name,
			&user.PasswordHash,
			&user.Location,
			&user.Bio,
			&user.PhotoURL,
			&user.Availability,
			&user.Visibility,
			&user.Role,
			&user.Active,
			&user.Banned,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
