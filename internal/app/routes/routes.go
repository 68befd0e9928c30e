package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nullpointers/attendance-backend/internal/app/controllers"
	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/middleware"
)

// SetupRouter configures all application routes. The route policy is
// static: /api/admin/* requires ADMIN, /api/faculty/* FACULTY,
// /api/student/* STUDENT. Only /api/login is public.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/login", authController.Login)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/logout", authController.Logout)

	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/students", adminController.CreateStudent)
		admin.GET("/students", adminController.ListStudents)
		admin.POST("/faculties", adminController.CreateFaculty)
		admin.GET("/faculties", adminController.ListFaculties)
		admin.POST("/classrooms", adminController.CreateClassroom)
		admin.GET("/classrooms", adminController.ListClassrooms)
		admin.POST("/classrooms/:id/students", adminController.AddStudentsToClassroom)
	}

	faculty := authenticated.Group("/faculty")
	faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
	{
		faculty.GET("/my-classes", facultyController.MyClasses)
		faculty.GET("/classroom/:id/students", facultyController.ClassroomStudents)
		faculty.POST("/mark-attendance", facultyController.MarkAttendance)
		faculty.GET("/attendance/today", facultyController.TodayAttendance)
	}

	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/my-attendance", studentController.MyAttendance)
		student.GET("/attendance-summary", studentController.AttendanceSummary)
	}
}
