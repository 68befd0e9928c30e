package models

import "time"

// AttendanceStatus is the recorded state of a student for one day.
type AttendanceStatus string

const (
	StatusPresent    AttendanceStatus = "PRESENT"
	StatusAbsent     AttendanceStatus = "ABSENT"
	StatusODInternal AttendanceStatus = "OD_INTERNAL"
	StatusODExternal AttendanceStatus = "OD_EXTERNAL"
)

// IsValid checks whether the status is one of the known statuses.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusODInternal, StatusODExternal:
		return true
	}
	return false
}

// NormalizeStatus applies the lenient marking policy: an empty or unknown
// status is recorded as PRESENT.
func NormalizeStatus(raw string) AttendanceStatus {
	s := AttendanceStatus(raw)
	if !s.IsValid() {
		return StatusPresent
	}
	return s
}

// Attendance is one student's record for one classroom on one date.
// (student, classroom, date) is unique.
type Attendance struct {
	ID          int64            `json:"id"`
	StudentID   int64            `json:"studentId"`
	ClassroomID int64            `json:"classroomId"`
	Date        time.Time        `json:"date"`
	Status      AttendanceStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}
