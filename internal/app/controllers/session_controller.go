package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// SessionController handles session scheduling operations
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession schedules a new session
// @Summary Create a new session
// @Description Schedules a session in a room after checking the room and teacher for overlapping sessions on the same day
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 201 {object} map[string]interface{} "Session created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or scheduling conflict"
// @Failure 404 {object} dto.ErrorResponse "Room, class or teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/create [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.CreateSession(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.H{"session": session}))
}

// GetSession retrieves one session
// @Summary Get session details
// @Description Retrieves a session joined with its room, class, teacher and the enrolled student count
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Session retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSession(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"session": session}))
}

// ListSessions retrieves sessions matching the query filters
// @Summary List sessions
// @Description Retrieves sessions matching every given filter. Filters combine conjunctively; an empty result is reported as not found
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param roomId query int false "Room ID"
// @Param roomNumber query int false "Room number"
// @Param classId query int false "Class ID"
// @Param classNumber query string false "Class title"
// @Param teacherId query int false "Teacher ID"
// @Param personalCode query string false "Teacher personal code"
// @Param studentId query int false "Student ID"
// @Param nationalCode query string false "Student national code"
// @Param day query string false "School day"
// @Param slotTime query string false "Slot window HH:MM-HH:MM"
// @Success 200 {object} map[string]interface{} "Sessions retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 404 {object} dto.ErrorResponse "No sessions found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/list [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	var query dto.ListSessionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sessions, err := c.sessionService.ListSessions(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"sessions": sessions}))
}

// UpdateSession reschedules a session
// @Summary Update a session's day or time slot
// @Description Moves a session to a new day and/or slot. The new slot is re-checked against the room and teacher schedules
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Session updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or scheduling conflict"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/update [patch]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.UpdateSession(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"session": session}))
}

// ChangeRoom moves a session to another room
// @Summary Change a session's room
// @Description Moves the session to the given room if that room is free in the session's slot
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.ChangeRoomRequest true "Target room"
// @Success 200 {object} map[string]interface{} "Room changed"
// @Failure 400 {object} dto.ErrorResponse "Scheduling conflict"
// @Failure 404 {object} dto.ErrorResponse "Session or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/change-room [patch]
func (c *SessionController) ChangeRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.ChangeRoom(ctx.Request.Context(), id, req.RoomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"session": session}))
}

// ChangeTeacher reassigns a session to another teacher
// @Summary Change a session's teacher
// @Description Reassigns the session to the given teacher if the teacher is active and free in the session's slot
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.ChangeTeacherRequest true "Target teacher"
// @Success 200 {object} map[string]interface{} "Teacher changed"
// @Failure 400 {object} dto.ErrorResponse "Scheduling conflict"
// @Failure 404 {object} dto.ErrorResponse "Session or teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/change-teacher [patch]
func (c *SessionController) ChangeTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.ChangeTeacher(ctx.Request.Context(), id, req.TeacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"session": session}))
}

// DeleteSession deletes a session
// @Summary Delete a session
// @Description Deletes the session and frees its slot. Attendance records of the session are removed as well
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/delete [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteSession(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "session deleted"}))
}
