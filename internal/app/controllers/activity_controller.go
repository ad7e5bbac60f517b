package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// ActivityController handles activity log reads
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// ListActivity retrieves the newest audit trail entries
// @Summary List recent activity
// @Description Retrieves the newest activity log entries, newest first
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return (default 50, max 200)"
// @Success 200 {object} map[string]interface{} "Activity retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity/list [get]
func (c *ActivityController) ListActivity(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	entries, err := c.activityService.GetRecentActivity(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.H{"activity": entries}))
}
