package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
)

// CariesDataController handles caries data point editing
type CariesDataController struct {
	service services.CariesDataService
}

// NewCariesDataController creates a new CariesDataController
func NewCariesDataController(service services.CariesDataService) *CariesDataController {
	return &CariesDataController{service: service}
}

// ListForStudy lists a study's data points
// @Summary List a study's caries data
// @Tags admin-caries-data
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Success 200 {object} dto.APIResponse{data=[]models.CariesDataPoint}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId}/caries-data [get]
func (c *CariesDataController) ListForStudy(ctx *gin.Context) {
	points, err := c.service.ListForStudy(ctx.Request.Context(), ctx.Param("studyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if points == nil {
		points = []models.CariesDataPoint{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(points))
}

// Create adds a data point to a study
// @Summary Add caries data to a study
// @Description A study holds at most one data point per sex, age category and socioeconomic status
// @Tags admin-caries-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Param request body dto.CariesDataRequest true "Data point"
// @Success 201 {object} dto.APIResponse{data=models.CariesDataPoint} "Data point created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate stratum"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId}/caries-data [post]
func (c *CariesDataController) Create(ctx *gin.Context) {
	var req dto.CariesDataRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	point, err := c.service.Create(ctx.Request.Context(), ctx.Param("studyId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(point))
}

// Get returns one data point
// @Summary Get a caries data point
// @Tags admin-caries-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Data point ID"
// @Success 200 {object} dto.APIResponse{data=models.CariesDataPoint}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Data point not found"
// @Router /api/v1/admin/caries-data/{id} [get]
func (c *CariesDataController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	point, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(point))
}

// Update replaces a data point
// @Summary Update a caries data point
// @Tags admin-caries-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Data point ID"
// @Param request body dto.CariesDataRequest true "Data point"
// @Success 200 {object} dto.APIResponse{data=models.CariesDataPoint}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Data point not found"
// @Router /api/v1/admin/caries-data/{id} [put]
func (c *CariesDataController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CariesDataRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	point, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(point))
}

// Delete removes a data point
// @Summary Delete a caries data point
// @Tags admin-caries-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Data point ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Data point not found"
// @Router /api/v1/admin/caries-data/{id} [delete]
func (c *CariesDataController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Caries data deleted")
}
