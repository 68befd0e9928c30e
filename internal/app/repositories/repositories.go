package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	FacultyRepository    *FacultyRepository
	ClassroomRepository  *ClassroomRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		ClassroomRepository:  NewClassroomRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
