package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/models/dto"
)

// parseIDParam parses a numeric path parameter. On failure it writes the 400
// envelope and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" must be a positive number"))
		return 0, false
	}
	return id, true
}
