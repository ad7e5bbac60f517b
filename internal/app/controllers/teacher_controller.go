package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
)

// TeacherController handles teacher operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} map[string]interface{} "Teacher created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate personal code/phone"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/create [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.H{"teacher": teacher}))
}

// GetTeacher retrieves one teacher
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Teacher retrieved"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"teacher": teacher}))
}

// ListTeachers retrieves teachers with pagination
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} map[string]interface{} "Teachers retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/list [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	teachers, pagination, err := c.teacherService.GetAllTeachers(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"teachers": teachers, "pagination": pagination}))
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Updates name, phone or active flag. The personal code is immutable
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTeacherRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Teacher updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate phone"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/update [patch]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"teacher": teacher}))
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes the teacher. Their sessions keep existing with the teacher reference cleared
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Teacher deleted"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/delete [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "teacher deleted"}))
}
