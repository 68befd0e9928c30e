package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/services"
	"github.com/nullpointers/attendance-backend/internal/middleware"
)

// StudentController handles the student-facing operations. The student is
// always resolved from the verified token, never from request parameters.
type StudentController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(attendanceService *services.AttendanceService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// MyAttendance returns the caller's attendance history with percentage
func (c *StudentController) MyAttendance(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
		return
	}

	resp, err := c.attendanceService.HistoryForUser(ctx.Request.Context(), identity.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// AttendanceSummary returns the caller's per-status counts
func (c *StudentController) AttendanceSummary(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
		return
	}

	resp, err := c.attendanceService.SummaryForUser(ctx.Request.Context(), identity.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
