package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/services"
	"github.com/nullpointers/attendance-backend/internal/middleware"
)

// AdminController handles account provisioning and classroom management
type AdminController struct {
	adminService     *services.AdminService
	classroomService *services.ClassroomService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, classroomService *services.ClassroomService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService:     adminService,
		classroomService: classroomService,
		logger:           logger,
	}
}

// CreateStudent provisions a student account with its profile
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return
	}

	resp, err := c.adminService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// CreateFaculty provisions a faculty account with its profile
func (c *AdminController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return
	}

	resp, err := c.adminService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// ListStudents lists all student profiles
func (c *AdminController) ListStudents(ctx *gin.Context) {
	resp, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListFaculties lists all faculty profiles
func (c *AdminController) ListFaculties(ctx *gin.Context) {
	resp, err := c.adminService.ListFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CreateClassroom creates an empty classroom
func (c *AdminController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return
	}

	resp, err := c.classroomService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// ListClassrooms lists all classrooms with rosters
func (c *AdminController) ListClassrooms(ctx *gin.Context) {
	resp, err := c.classroomService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// AddStudentsToClassroom enrolls students into a classroom
func (c *AdminController) AddStudentsToClassroom(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom id").WithField("id"),
		})
		return
	}

	var req dto.AddStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return
	}

	if err := c.classroomService.AddStudents(ctx.Request.Context(), classroomID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Students enrolled"}})
}
