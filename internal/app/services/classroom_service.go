package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/repositories"
)

// ClassroomService handles classroom and roster management
type ClassroomService struct {
	classroomRepo *repositories.ClassroomRepository
	studentRepo   *repositories.StudentRepository
	logger        zerolog.Logger
}

// NewClassroomService creates a new ClassroomService
func NewClassroomService(
	classroomRepo *repositories.ClassroomRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		studentRepo:   studentRepo,
		logger:        logger,
	}
}

// Create creates an empty classroom
func (s *ClassroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomResponse, error) {
	classroom := &models.Classroom{Name: req.Name}
	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", classroom.Name).Int64("id", classroom.ID).Msg("Classroom created")

	resp := dto.NewClassroomResponse(classroom)
	return &resp, nil
}

// AddStudents enrolls students into a classroom. Every student ID must
// resolve before any enrollment is written.
func (s *ClassroomService) AddStudents(ctx context.Context, classroomID int64, req *dto.AddStudentsRequest) error {
	if _, err := s.classroomRepo.GetByID(ctx, classroomID); err != nil {
		return err
	}

	for _, studentID := range req.StudentIDs {
		if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
			return err
		}
	}

	return s.classroomRepo.AddStudents(ctx, classroomID, req.StudentIDs)
}

// List lists all classrooms with their rosters
func (s *ClassroomService) List(ctx context.Context) ([]dto.ClassroomResponse, error) {
	classrooms, err := s.classroomRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ClassroomResponse, 0, len(classrooms))
	for _, c := range classrooms {
		roster, err := s.classroomRepo.GetRoster(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.Students = roster
		resp = append(resp, dto.NewClassroomResponse(c))
	}
	return resp, nil
}

// Roster returns one classroom with its enrolled students
func (s *ClassroomService) Roster(ctx context.Context, classroomID int64) (*dto.ClassroomResponse, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	roster, err := s.classroomRepo.GetRoster(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	classroom.Students = roster

	resp := dto.NewClassroomResponse(classroom)
	return &resp, nil
}
