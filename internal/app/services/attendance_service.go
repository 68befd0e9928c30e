package services

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/repositories"
	"github.com/nullpointers/attendance-backend/internal/pkg/helpers"
	"github.com/nullpointers/attendance-backend/internal/pkg/metrics"
)

// AttendanceService handles marking and aggregation
type AttendanceService struct {
	rosters  repositories.IRosterRepository
	students repositories.IStudentRepository
	ledger   repositories.IAttendanceLedger
	logger   zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	rosters repositories.IRosterRepository,
	students repositories.IStudentRepository,
	ledger repositories.IAttendanceLedger,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		rosters:  rosters,
		students: students,
		ledger:   ledger,
		logger:   logger,
	}
}

// Mark writes one record per roster member for the given date. A member
// missing from the request map, or carrying an unknown status, is recorded
// PRESENT. Failures are isolated per record and reported, not aborted on.
func (s *AttendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.rosters.GetByID(ctx, req.ClassroomID); err != nil {
		return nil, err
	}

	roster, err := s.rosters.GetRoster(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}

	resp := &dto.MarkAttendanceResponse{
		ClassroomID: req.ClassroomID,
		Date:        req.Date,
	}

	for _, student := range roster {
		record := &models.Attendance{
			StudentID:   student.ID,
			ClassroomID: req.ClassroomID,
			Date:        date,
			Status:      models.NormalizeStatus(req.Attendance[student.RegdNumber]),
		}
		if err := s.ledger.Insert(ctx, record); err != nil {
			s.logger.Warn().Err(err).
				Str("regdNumber", student.RegdNumber).
				Int64("classroomId", req.ClassroomID).
				Str("date", req.Date).
				Msg("Failed to mark attendance record")
			resp.Failed = append(resp.Failed, dto.MarkFailure{
				RegdNumber: student.RegdNumber,
				Reason:     err.Error(),
			})
			continue
		}
		resp.Marked++
		metrics.AttendanceRecordsMarked.Inc()
	}

	s.logger.Info().
		Int64("classroomId", req.ClassroomID).
		Str("date", req.Date).
		Int("marked", resp.Marked).
		Int("failed", len(resp.Failed)).
		Msg("Attendance batch complete")

	return resp, nil
}

// HistoryForStudent returns a student's records with the derived
// percentage.
func (s *AttendanceService) HistoryForStudent(ctx context.Context, studentID int64) (*dto.AttendanceHistoryResponse, error) {
	records, err := s.ledger.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AttendanceHistoryResponse{
		StudentID:            studentID,
		TotalRecords:         len(records),
		Attendance:           make([]dto.AttendanceRecord, 0, len(records)),
		AttendancePercentage: Percentage(records),
	}
	for _, r := range records {
		resp.Attendance = append(resp.Attendance, dto.NewAttendanceRecord(r))
	}

	return resp, nil
}

// SummaryForStudent returns a student's per-status counts.
func (s *AttendanceService) SummaryForStudent(ctx context.Context, studentID int64) (*dto.AttendanceSummaryResponse, error) {
	records, err := s.ledger.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AttendanceSummaryResponse{
		StudentID: studentID,
		TotalDays: len(records),
	}
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			resp.Summary.Present++
		case models.StatusAbsent:
			resp.Summary.Absent++
		case models.StatusODInternal:
			resp.Summary.ODInternal++
		case models.StatusODExternal:
			resp.Summary.ODExternal++
		}
	}

	return resp, nil
}

// HistoryForUser resolves the student profile behind a username, then
// returns its history.
func (s *AttendanceService) HistoryForUser(ctx context.Context, username string) (*dto.AttendanceHistoryResponse, error) {
	student, err := s.students.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.HistoryForStudent(ctx, student.ID)
}

// SummaryForUser resolves the student profile behind a username, then
// returns its summary.
func (s *AttendanceService) SummaryForUser(ctx context.Context, username string) (*dto.AttendanceSummaryResponse, error) {
	student, err := s.students.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.SummaryForStudent(ctx, student.ID)
}

// ForDate returns all records written for one date.
func (s *AttendanceService) ForDate(ctx context.Context, date time.Time) (*dto.TodayAttendanceResponse, error) {
	records, err := s.ledger.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	resp := &dto.TodayAttendanceResponse{
		Date:         date.Format(helpers.DateLayout),
		TotalRecords: len(records),
		Records:      make([]dto.AttendanceRecord, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, dto.NewAttendanceRecord(r))
	}

	return resp, nil
}

// Percentage computes present/total*100 rounded to two decimals, 0 for an
// empty record set.
func Percentage(records []*models.Attendance) float64 {
	if len(records) == 0 {
		return 0
	}
	present := 0
	for _, r := range records {
		if r.Status == models.StatusPresent {
			present++
		}
	}
	pct := float64(present) / float64(len(records)) * 100
	return math.Round(pct*100) / 100
}
