package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// RoomController handles room operations
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} map[string]interface{} "Room created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate room number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/create [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room, err := c.roomService.CreateRoom(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.H{"room": room}))
}

// GetRoom retrieves one room
// @Summary Get room details
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Room retrieved"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"room": room}))
}

// ListRooms retrieves all rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Rooms retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/list [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"rooms": rooms}))
}

// UpdateRoom updates an existing room
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Room updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate room number"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/update [patch]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room, err := c.roomService.UpdateRoom(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"room": room}))
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Description Deletes the room. Sessions scheduled in it keep existing with the room reference cleared
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} map[string]interface{} "Room deleted"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/delete [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"message": "room deleted"}))
}
