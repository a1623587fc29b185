package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	"github.com/paydesk/compchange/internal/models"
	"github.com/paydesk/compchange/internal/utils/mapping"
)

const userColumns = `user_id, username, password_hash, name, department,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time`

// UserRepository implements user persistence using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Ensure UserRepository implements the repository port
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// FindUserByID retrieves a specific user by their ID. Soft-deleted users are
// not returned.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`

	m, err := r.scanUserRow(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + userID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// FindUserByUsername retrieves a specific user by their username.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`

	m, err := r.scanUserRow(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + username + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username "+username, err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// FindUsers retrieves a paginated list of users.
func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC, user_id DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := r.scanUserRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, mapping.ToDomainUser(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

// SaveUser persists a new user.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, name, department, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Name,
		m.Department,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save user "+m.UserID, err)
	}
	return nil
}

// UpdateUser updates an existing user's details.
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.pool.Exec(ctx, query, m.Name, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + m.UserID + " not found")
	}
	return nil
}

// UpdateUserRefreshToken stores the hash and expiry of a user's refresh token.
// Nil values clear it.
func (r *UserRepository) UpdateUserRefreshToken(ctx context.Context, userID string, refreshTokenHash *string, expiryTime *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3
		WHERE user_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.pool.Exec(ctx, query, refreshTokenHash, expiryTime, time.Now().UTC(), userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token for user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}

func (r *UserRepository) scanUserRow(row rowScanner) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Department,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
