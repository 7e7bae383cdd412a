package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/db"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/dberrors"
	"github.com/vani-campus/vani/internal/pkg/logger"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role", "karma").
		Values(user.Name, user.Email, user.Password, string(user.Role), user.Karma).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error inserting user")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "role", "karma", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Karma, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "role", "karma", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Karma, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// AddKarma increments the user's karma in place. The increment is commutative,
// so concurrent credits never lose updates regardless of ordering.
func (r *UserRepository) AddKarma(ctx context.Context, userID int64, delta int) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`UPDATE users SET karma = karma + $2 WHERE id = $1`,
		userID, delta,
	)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int("delta", delta).Msg("Error updating karma")
		return fmt.Errorf("error updating karma: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Leaderboard returns the top users ordered by karma descending. Ties are
// broken by id so the ordering is stable across calls.
func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "role", "karma", "created_at").
		From("users").
		OrderBy("karma DESC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing leaderboard query")
		return nil, fmt.Errorf("error querying leaderboard: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Karma, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning leaderboard row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", err)
	}

	return users, nil
}
