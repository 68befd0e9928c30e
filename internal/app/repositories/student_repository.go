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

// IStudentRepository is the lookup the student-facing endpoints depend on.
type IStudentRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `s.id, s.user_id, s.regd_number, s.dept, s.phone, s.email`

// GetByUsername retrieves the student profile attached to a username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE u.username = $1`,
		username).Scan(
		&student.ID, &student.UserID, &student.RegdNumber,
		&student.Dept, &student.Phone, &student.Email)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying student: %w", err)
	}

	return student, nil
}

// GetByID retrieves a student profile by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students s
		WHERE s.id = $1`,
		id).Scan(
		&student.ID, &student.UserID, &student.RegdNumber,
		&student.Dept, &student.Phone, &student.Email)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying student: %w", err)
	}

	return student, nil
}

// GetAll lists all student profiles with their usernames
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`, u.username
		FROM students s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.regd_number`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{User: &models.User{}}
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.RegdNumber,
			&student.Dept, &student.Phone, &student.Email,
			&student.User.Username); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// CreateTx inserts a student profile within an existing transaction
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO students (user_id, regd_number, dept, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		student.UserID, student.RegdNumber, student.Dept, student.Phone, student.Email).Scan(&student.ID)

	if dberrors.IsDuplicateConstraintError(err, "students_regd_number_key") {
		return apperrors.ErrRegdNumberAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}
