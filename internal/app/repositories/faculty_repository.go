package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/dberrors"
)

// FacultyRepository handles faculty profile database operations
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// GetAll lists all faculty profiles with their usernames
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.user_id, f.staff_code, f.dept, f.phone, f.email, u.username
		FROM faculties f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.staff_code`)
	if err != nil {
		return nil, fmt.Errorf("error listing faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty := &models.Faculty{User: &models.User{}}
		if err := rows.Scan(
			&faculty.ID, &faculty.UserID, &faculty.StaffCode,
			&faculty.Dept, &faculty.Phone, &faculty.Email,
			&faculty.User.Username); err != nil {
			return nil, fmt.Errorf("error scanning faculty: %w", err)
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculties: %w", err)
	}

	return faculties, nil
}

// CreateTx inserts a faculty profile within an existing transaction
func (r *FacultyRepository) CreateTx(ctx context.Context, tx pgx.Tx, faculty *models.Faculty) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO faculties (user_id, staff_code, dept, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		faculty.UserID, faculty.StaffCode, faculty.Dept, faculty.Phone, faculty.Email).Scan(&faculty.ID)

	if dberrors.IsDuplicateConstraintError(err, "faculties_staff_code_key") {
		return apperrors.ErrStaffCodeAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}
