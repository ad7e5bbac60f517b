package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// RecordAttendance records a student's presence in a session
// @Summary Record attendance
// @Description Records present/delay/absent for one student in one session. Recording twice overwrites the earlier entry
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordAttendanceRequest true "Attendance record"
// @Success 201 {object} map[string]interface{} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or student not in the session's class"
// @Failure 404 {object} dto.ErrorResponse "Student or session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/create [post]
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.RecordAttendance(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.H{"attendance": record}))
}

// GetSessionAttendance retrieves the attendance sheet of one session
// @Summary Get a session's attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Attendance records retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/session/{id} [get]
func (c *AttendanceController) GetSessionAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.attendanceService.GetSessionAttendance(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"attendance": records}))
}

// GetStudentAttendance retrieves one student's attendance history
// @Summary Get a student's attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Attendance records retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/student/{id} [get]
func (c *AttendanceController) GetStudentAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.attendanceService.GetStudentAttendance(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"attendance": records}))
}

// DeleteAttendance deletes one attendance record
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Attendance record deleted"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id}/delete [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "attendance record deleted"}))
}
