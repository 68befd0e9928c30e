package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/dberrors"
)

// ICredentialStore is the lookup the login path depends on.
type ICredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

// UsernameExists checks if a username already exists
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// Create inserts a user account and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		user.Username, user.Password, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
		return apperrors.ErrUsernameAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateTx inserts a user account within an existing transaction
func (r *UserRepository) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		user.Username, user.Password, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
		return apperrors.ErrUsernameAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}
