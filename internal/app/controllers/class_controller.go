package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// ClassController handles class and enrollment operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass handles class creation
// @Summary Create a new class
// @Description Creates a class with a unique title and number and a positive capacity
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} map[string]interface{} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate class"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/create [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	class, err := c.classService.CreateClass(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.H{"class": class}))
}

// GetClass retrieves one class
// @Summary Get class details
// @Description Retrieves a class with its current enrolled student count
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Class retrieved"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetClassByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"class": class}))
}

// ListClasses retrieves all classes
// @Summary List classes
// @Description Retrieves all classes with their enrolled student counts
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Classes retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/list [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"classes": classes}))
}

// UpdateClass updates title and/or number of a class
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.UpdateClassRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Class updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate class"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/update [patch]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	class, err := c.classService.UpdateClass(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"class": class}))
}

// ChangeCapacity sets a new capacity for a class
// @Summary Change a class's capacity
// @Description Sets a new capacity. Shrinking below the current enrollment is rejected
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.ChangeCapacityRequest true "New capacity"
// @Success 200 {object} map[string]interface{} "Capacity changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid capacity or below current enrollment"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/change-capacity [patch]
func (c *ClassController) ChangeCapacity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeCapacityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	class, err := c.classService.ChangeCapacity(ctx.Request.Context(), id, req.NewCapacity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"class": class}))
}

// AddStudents enrolls a batch of students into a class
// @Summary Add students to a class
// @Description Enrolls students identified by id and/or national code. Unknown identifiers are dropped and current members skipped; enrollment elsewhere or a capacity overflow rejects the whole batch
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.AddStudentsRequest true "Student identifiers"
// @Success 200 {object} map[string]interface{} "Students enrolled"
// @Failure 400 {object} dto.ErrorResponse "Validation failure, enrollment elsewhere or capacity overflow"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/students/add [patch]
func (c *ClassController) AddStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	class, err := c.classService.AddStudents(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"class": class}))
}

// RemoveStudent unenrolls one student from a class
// @Summary Remove a student from a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Student removed"
// @Failure 400 {object} dto.ErrorResponse "Student is not enrolled in this class"
// @Failure 404 {object} dto.ErrorResponse "Class or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/remove-student/{studentId} [patch]
func (c *ClassController) RemoveStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.classService.RemoveStudent(ctx.Request.Context(), id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "student removed from class"}))
}

// DeleteClass deletes a class
// @Summary Delete a class
// @Description Deletes the class. Its students stay, unassigned, and its sessions keep running with the class reference cleared
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Class deleted"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/delete [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "class deleted"}))
}
