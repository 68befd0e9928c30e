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

// IRosterRepository is the classroom lookup the marking path depends on.
type IRosterRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)
	GetRoster(ctx context.Context, classroomID int64) ([]*models.Student, error)
}

// ClassroomRepository handles classroom and roster database operations
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// Create inserts a classroom and assigns its ID
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO classrooms (name)
		VALUES ($1)
		RETURNING id`,
		classroom.Name).Scan(&classroom.ID)

	if dberrors.IsDuplicateConstraintError(err, "classrooms_name_key") {
		return apperrors.ErrClassroomExists
	}
	if err != nil {
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// GetByID retrieves a classroom without its roster
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom := &models.Classroom{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name FROM classrooms WHERE id = $1`,
		id).Scan(&classroom.ID, &classroom.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrClassroomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying classroom: %w", err)
	}

	return classroom, nil
}

// GetAll lists all classrooms without rosters
func (r *ClassroomRepository) GetAll(ctx context.Context) ([]*models.Classroom, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM classrooms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		classroom := &models.Classroom{}
		if err := rows.Scan(&classroom.ID, &classroom.Name); err != nil {
			return nil, fmt.Errorf("error scanning classroom: %w", err)
		}
		classrooms = append(classrooms, classroom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classrooms: %w", err)
	}

	return classrooms, nil
}

// GetRoster lists the students enrolled in a classroom
func (r *ClassroomRepository) GetRoster(ctx context.Context, classroomID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.regd_number, s.dept, s.phone, s.email
		FROM students s
		JOIN classroom_students cs ON cs.student_id = s.id
		WHERE cs.classroom_id = $1
		ORDER BY s.regd_number`,
		classroomID)
	if err != nil {
		return nil, fmt.Errorf("error querying roster: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.RegdNumber,
			&student.Dept, &student.Phone, &student.Email); err != nil {
			return nil, fmt.Errorf("error scanning roster: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster: %w", err)
	}

	return students, nil
}

// AddStudents enrolls students into a classroom. Existing enrollments are
// left untouched.
func (r *ClassroomRepository) AddStudents(ctx context.Context, classroomID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO classroom_students (classroom_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			classroomID, studentID)
		if err != nil {
			return fmt.Errorf("error enrolling student %d: %w", studentID, err)
		}
	}
	return nil
}
