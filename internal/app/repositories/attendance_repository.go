package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/dberrors"
)

// IAttendanceLedger is the record store the marking and summary paths
// depend on.
type IAttendanceLedger interface {
	Insert(ctx context.Context, record *models.Attendance) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error)
}

// AttendanceRepository handles attendance record database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Insert writes one attendance record. A second record for the same
// (student, classroom, date) reports ErrDuplicateAttendance.
func (r *AttendanceRepository) Insert(ctx context.Context, record *models.Attendance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance (student_id, classroom_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		record.StudentID, record.ClassroomID, record.Date, record.Status).Scan(
		&record.ID, &record.CreatedAt)

	if dberrors.IsDuplicateConstraintError(err, "attendance_student_classroom_date_key") {
		return apperrors.ErrDuplicateAttendance
	}
	if err != nil {
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	return nil
}

// ListByStudent lists a student's records, newest first
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, classroom_id, date, status, created_at
		FROM attendance
		WHERE student_id = $1
		ORDER BY date DESC, id DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByDate lists all records for one date
func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, classroom_id, date, status, created_at
		FROM attendance
		WHERE date = $1
		ORDER BY classroom_id, student_id`,
		date)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		if err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassroomID,
			&record.Date, &record.Status, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}
	return records, nil
}
