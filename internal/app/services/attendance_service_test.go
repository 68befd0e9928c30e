package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
)

type fakeRosterRepository struct {
	classrooms map[int64]*models.Classroom
	rosters    map[int64][]*models.Student
}

func (f *fakeRosterRepository) GetByID(_ context.Context, id int64) (*models.Classroom, error) {
	classroom, ok := f.classrooms[id]
	if !ok {
		return nil, apperrors.ErrClassroomNotFound
	}
	return classroom, nil
}

func (f *fakeRosterRepository) GetRoster(_ context.Context, classroomID int64) ([]*models.Student, error) {
	return f.rosters[classroomID], nil
}

type fakeStudentRepository struct {
	byUsername map[string]*models.Student
}

func (f *fakeStudentRepository) GetByUsername(_ context.Context, username string) (*models.Student, error) {
	student, ok := f.byUsername[username]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

type fakeLedger struct {
	records   []*models.Attendance
	failOn    map[int64]error
	byStudent map[int64][]*models.Attendance
}

func (f *fakeLedger) Insert(_ context.Context, record *models.Attendance) error {
	if err, ok := f.failOn[record.StudentID]; ok {
		return err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeLedger) ListByStudent(_ context.Context, studentID int64) ([]*models.Attendance, error) {
	return f.byStudent[studentID], nil
}

func (f *fakeLedger) ListByDate(_ context.Context, date time.Time) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, r := range f.records {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func threeStudentRoster() *fakeRosterRepository {
	return &fakeRosterRepository{
		classrooms: map[int64]*models.Classroom{10: {ID: 10, Name: "CSE-A"}},
		rosters: map[int64][]*models.Student{10: {
			{ID: 1, RegdNumber: "R001"},
			{ID: 2, RegdNumber: "R002"},
			{ID: 3, RegdNumber: "R003"},
		}},
	}
}

func newTestAttendanceService(rosters *fakeRosterRepository, students *fakeStudentRepository, ledger *fakeLedger) *AttendanceService {
	if students == nil {
		students = &fakeStudentRepository{}
	}
	return NewAttendanceService(rosters, students, ledger, zerolog.Nop())
}

func TestMarkDefaultsMissingToPresent(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		ClassroomID: 10,
		Date:        "2026-03-02",
		Attendance:  map[string]string{"R002": "ABSENT"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Marked)
	assert.Empty(t, resp.Failed)

	statuses := map[int64]models.AttendanceStatus{}
	for _, r := range ledger.records {
		statuses[r.StudentID] = r.Status
	}
	assert.Equal(t, models.StatusPresent, statuses[1])
	assert.Equal(t, models.StatusAbsent, statuses[2])
	assert.Equal(t, models.StatusPresent, statuses[3])
}

func TestMarkUnknownStatusRecordedAsPresent(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		ClassroomID: 10,
		Date:        "2026-03-02",
		Attendance:  map[string]string{"R001": "SICK", "R003": "od_internal"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Marked)

	// Unknown values, including wrong-case ones, fall back to PRESENT
	for _, r := range ledger.records {
		assert.Equal(t, models.StatusPresent, r.Status)
	}
}

func TestMarkIsolatesPerRecordFailures(t *testing.T) {
	ledger := &fakeLedger{failOn: map[int64]error{2: apperrors.ErrDuplicateAttendance}}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		ClassroomID: 10,
		Date:        "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Marked)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "R002", resp.Failed[0].RegdNumber)
	assert.Contains(t, resp.Failed[0].Reason, "already marked")
}

func TestMarkUnknownClassroom(t *testing.T) {
	svc := newTestAttendanceService(threeStudentRoster(), nil, &fakeLedger{})

	_, err := svc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		ClassroomID: 99,
		Date:        "2026-03-02",
	})
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)
}

func TestMarkRejectsBadDate(t *testing.T) {
	svc := newTestAttendanceService(threeStudentRoster(), nil, &fakeLedger{})

	_, err := svc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		ClassroomID: 10,
		Date:        "02-03-2026",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func recordsWithStatuses(statuses ...models.AttendanceStatus) []*models.Attendance {
	records := make([]*models.Attendance, 0, len(statuses))
	for i, s := range statuses {
		records = append(records, &models.Attendance{
			ID:        int64(i + 1),
			StudentID: 1,
			Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Status:    s,
		})
	}
	return records
}

func TestHistoryPercentage(t *testing.T) {
	ledger := &fakeLedger{byStudent: map[int64][]*models.Attendance{
		1: recordsWithStatuses(models.StatusPresent, models.StatusPresent, models.StatusAbsent),
	}}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.HistoryForStudent(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalRecords)
	assert.Len(t, resp.Attendance, 3)
	assert.InDelta(t, 66.67, resp.AttendancePercentage, 0.001)
}

func TestHistoryEmptyRecords(t *testing.T) {
	ledger := &fakeLedger{byStudent: map[int64][]*models.Attendance{}}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.HistoryForStudent(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalRecords)
	assert.Empty(t, resp.Attendance)
	assert.Equal(t, float64(0), resp.AttendancePercentage)
}

func TestSummaryCountsPerStatus(t *testing.T) {
	ledger := &fakeLedger{byStudent: map[int64][]*models.Attendance{
		1: recordsWithStatuses(
			models.StatusPresent, models.StatusPresent, models.StatusAbsent,
			models.StatusODInternal, models.StatusODExternal,
		),
	}}
	svc := newTestAttendanceService(threeStudentRoster(), nil, ledger)

	resp, err := svc.SummaryForStudent(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalDays)
	assert.Equal(t, 2, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 1, resp.Summary.ODInternal)
	assert.Equal(t, 1, resp.Summary.ODExternal)
}

func TestSummaryForUserResolvesStudent(t *testing.T) {
	students := &fakeStudentRepository{byUsername: map[string]*models.Student{
		"s001": {ID: 1, RegdNumber: "R001"},
	}}
	ledger := &fakeLedger{byStudent: map[int64][]*models.Attendance{
		1: recordsWithStatuses(models.StatusPresent),
	}}
	svc := newTestAttendanceService(threeStudentRoster(), students, ledger)

	resp, err := svc.SummaryForUser(context.Background(), "s001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.StudentID)
	assert.Equal(t, 1, resp.Summary.Present)

	_, err = svc.SummaryForUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestPercentageRounding(t *testing.T) {
	// 1 of 3 present rounds to 33.33, not 33.333...
	records := recordsWithStatuses(models.StatusPresent, models.StatusAbsent, models.StatusAbsent)
	assert.InDelta(t, 33.33, Percentage(records), 0.001)

	assert.Equal(t, float64(0), Percentage(nil))
	assert.Equal(t, float64(100), Percentage(recordsWithStatuses(models.StatusPresent)))
}
