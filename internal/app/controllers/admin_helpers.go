package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/middleware"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// parseID reads a positive numeric path parameter. On failure it writes a
// validation error and returns false.
func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(param, "must be a positive whole number"))
		return 0, false
	}
	return id, true
}

// editor returns the authenticated editor. Admin routes always run JWTAuth
// first, so a missing editor is a routing error.
func editor(ctx *gin.Context) (models.Editor, bool) {
	e, ok := middleware.CurrentEditor(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	}
	return e, ok
}

func deleted(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: message}))
}
