package dto

import "github.com/nullpointers/attendance-backend/internal/app/models"

// MarkAttendanceRequest is the batch marking payload. Attendance maps
// registration number to status; roster members absent from the map are
// recorded as PRESENT.
type MarkAttendanceRequest struct {
	ClassroomID int64             `json:"classId" binding:"required,min=1"`
	Date        string            `json:"date" binding:"required"`
	Attendance  map[string]string `json:"attendance"`
}

// MarkFailure reports one roster member whose record could not be written.
type MarkFailure struct {
	RegdNumber string `json:"regdNumber"`
	Reason     string `json:"reason"`
}

// MarkAttendanceResponse summarizes a batch marking run.
type MarkAttendanceResponse struct {
	ClassroomID int64         `json:"classId"`
	Date        string        `json:"date"`
	Marked      int           `json:"marked"`
	Failed      []MarkFailure `json:"failed,omitempty"`
}

// AttendanceRecord is one attendance row as returned to clients.
type AttendanceRecord struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	ClassroomID int64  `json:"classroomId"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

// AttendanceHistoryResponse is a student's full record list with the
// derived percentage.
type AttendanceHistoryResponse struct {
	StudentID            int64              `json:"studentId"`
	TotalRecords         int                `json:"totalRecords"`
	Attendance           []AttendanceRecord `json:"attendance"`
	AttendancePercentage float64            `json:"attendancePercentage"`
}

// StatusBreakdown holds per-status counts for a summary.
type StatusBreakdown struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	ODInternal int `json:"odInternal"`
	ODExternal int `json:"odExternal"`
}

// AttendanceSummaryResponse is a student's status-bucket summary.
type AttendanceSummaryResponse struct {
	StudentID int64           `json:"studentId"`
	Summary   StatusBreakdown `json:"summary"`
	TotalDays int             `json:"totalDays"`
}

// TodayAttendanceResponse is the faculty overview of records written for
// one date.
type TodayAttendanceResponse struct {
	Date         string             `json:"date"`
	TotalRecords int                `json:"totalRecords"`
	Records      []AttendanceRecord `json:"records"`
}

// NewAttendanceRecord converts a model row to its client representation.
func NewAttendanceRecord(a *models.Attendance) AttendanceRecord {
	return AttendanceRecord{
		ID:          a.ID,
		StudentID:   a.StudentID,
		ClassroomID: a.ClassroomID,
		Date:        a.Date.Format("2006-01-02"),
		Status:      string(a.Status),
	}
}
