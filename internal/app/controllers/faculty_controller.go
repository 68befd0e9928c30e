package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/services"
	"github.com/nullpointers/attendance-backend/internal/middleware"
)

// FacultyController handles the faculty-facing operations
type FacultyController struct {
	attendanceService *services.AttendanceService
	classroomService  *services.ClassroomService
	logger            zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(attendanceService *services.AttendanceService, classroomService *services.ClassroomService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		attendanceService: attendanceService,
		classroomService:  classroomService,
		logger:            logger,
	}
}

// MyClasses lists the classrooms available to the faculty member
func (c *FacultyController) MyClasses(ctx *gin.Context) {
	resp, err := c.classroomService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ClassroomStudents returns one classroom's roster
func (c *FacultyController) ClassroomStudents(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom id").WithField("id"),
		})
		return
	}

	resp, err := c.classroomService.Roster(ctx.Request.Context(), classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// MarkAttendance writes a batch of attendance records for one classroom
// and date
func (c *FacultyController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return
	}

	resp, err := c.attendanceService.Mark(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// TodayAttendance returns all records written today
func (c *FacultyController) TodayAttendance(ctx *gin.Context) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	resp, err := c.attendanceService.ForDate(ctx.Request.Context(), today)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
