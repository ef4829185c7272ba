package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
)

// ProjectMetadataController handles project metadata editing
type ProjectMetadataController struct {
	service services.ProjectMetadataService
}

// NewProjectMetadataController creates a new ProjectMetadataController
func NewProjectMetadataController(service services.ProjectMetadataService) *ProjectMetadataController {
	return &ProjectMetadataController{service: service}
}

// List returns every project metadata record
// @Summary List project metadata
// @Tags admin-project
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectMetadataResponse}
// @Router /api/v1/admin/project-metadata [get]
func (c *ProjectMetadataController) List(ctx *gin.Context) {
	records, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projectMetadataList(records)))
}

// Create adds a project metadata record
// @Summary Create project metadata
// @Tags admin-project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProjectMetadataRequest true "Project metadata"
// @Success 201 {object} dto.APIResponse{data=dto.ProjectMetadataResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /api/v1/admin/project-metadata [post]
func (c *ProjectMetadataController) Create(ctx *gin.Context) {
	var req dto.ProjectMetadataRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	m, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromProjectMetadata(m)))
}

// Get returns one project metadata record
// @Summary Get project metadata
// @Tags admin-project
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectMetadataResponse}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/admin/project-metadata/{id} [get]
func (c *ProjectMetadataController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	m, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromProjectMetadata(m)))
}

// Update replaces a project metadata record
// @Summary Update project metadata
// @Description last_updated is refreshed on every save
// @Tags admin-project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.ProjectMetadataRequest true "Project metadata"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectMetadataResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/admin/project-metadata/{id} [put]
func (c *ProjectMetadataController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ProjectMetadataRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	m, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromProjectMetadata(m)))
}

// Delete removes a project metadata record
// @Summary Delete project metadata
// @Tags admin-project
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/admin/project-metadata/{id} [delete]
func (c *ProjectMetadataController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Project metadata deleted")
}

func projectMetadataList(records []models.ProjectMetadata) []dto.ProjectMetadataResponse {
	out := make([]dto.ProjectMetadataResponse, 0, len(records))
	for i := range records {
		out = append(out, dto.FromProjectMetadata(&records[i]))
	}
	return out
}
