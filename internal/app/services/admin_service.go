package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/repositories"
	"github.com/nullpointers/attendance-backend/internal/db"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

// AdminService handles account and profile provisioning. The role of a
// provisioned account is fixed by the operation, never by the client.
type AdminService struct {
	database    *db.PostgresDB
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	database *db.PostgresDB,
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		database:    database,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// CreateStudent provisions a STUDENT account and its profile in one
// transaction. Either both rows land or neither does.
func (s *AdminService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleStudent,
	}
	student := &models.Student{
		RegdNumber: req.RegdNumber,
		Dept:       req.Dept,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		student.UserID = user.ID
		return s.studentRepo.CreateTx(ctx, tx, student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("regdNumber", student.RegdNumber).Msg("Student provisioned")

	student.User = user
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// CreateFaculty provisions a FACULTY account and its profile in one
// transaction.
func (s *AdminService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleFaculty,
	}
	faculty := &models.Faculty{
		StaffCode: req.StaffCode,
		Dept:      req.Dept,
		Phone:     req.Phone,
		Email:     req.Email,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		faculty.UserID = user.ID
		return s.facultyRepo.CreateTx(ctx, tx, faculty)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("staffCode", faculty.StaffCode).Msg("Faculty provisioned")

	faculty.User = user
	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}

// ListStudents lists all student profiles
func (s *AdminService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		resp = append(resp, dto.NewStudentResponse(st))
	}
	return resp, nil
}

// ListFaculties lists all faculty profiles
func (s *AdminService) ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		resp = append(resp, dto.NewFacultyResponse(f))
	}
	return resp, nil
}
