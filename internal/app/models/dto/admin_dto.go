package dto

import "github.com/nullpointers/attendance-backend/internal/app/models"

// CreateStudentRequest provisions a STUDENT account plus profile. The role
// is fixed by the endpoint, never taken from the client.
type CreateStudentRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	RegdNumber string `json:"regdNumber" binding:"required"`
	Dept       string `json:"dept" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// CreateFacultyRequest provisions a FACULTY account plus profile.
type CreateFacultyRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	StaffCode string `json:"staffCode" binding:"required"`
	Dept      string `json:"dept" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// CreateClassroomRequest creates an empty classroom.
type CreateClassroomRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddStudentsRequest appends students to a classroom roster.
type AddStudentsRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
}

// StudentResponse represents a provisioned student profile.
type StudentResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	RegdNumber string `json:"regdNumber"`
	Dept       string `json:"dept"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// FacultyResponse represents a provisioned faculty profile.
type FacultyResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	StaffCode string `json:"staffCode"`
	Dept      string `json:"dept"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ClassroomResponse represents a classroom with its roster size.
type ClassroomResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Students []StudentResponse `json:"students,omitempty"`
}

// NewStudentResponse converts a student model to its client representation.
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:         s.ID,
		RegdNumber: s.RegdNumber,
		Dept:       s.Dept,
		Phone:      s.Phone,
		Email:      s.Email,
	}
	if s.User != nil {
		resp.Username = s.User.Username
	}
	return resp
}

// NewFacultyResponse converts a faculty model to its client representation.
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	resp := FacultyResponse{
		ID:        f.ID,
		StaffCode: f.StaffCode,
		Dept:      f.Dept,
		Phone:     f.Phone,
		Email:     f.Email,
	}
	if f.User != nil {
		resp.Username = f.User.Username
	}
	return resp
}

// NewClassroomResponse converts a classroom model, roster included.
func NewClassroomResponse(c *models.Classroom) ClassroomResponse {
	resp := ClassroomResponse{ID: c.ID, Name: c.Name}
	for _, s := range c.Students {
		resp.Students = append(resp.Students, NewStudentResponse(s))
	}
	return resp
}
