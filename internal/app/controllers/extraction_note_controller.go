package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
)

// ExtractionNoteController handles extraction note editing
type ExtractionNoteController struct {
	service services.ExtractionNoteService
}

// NewExtractionNoteController creates a new ExtractionNoteController
func NewExtractionNoteController(service services.ExtractionNoteService) *ExtractionNoteController {
	return &ExtractionNoteController{service: service}
}

// ListForStudy lists a study's notes, newest first
// @Summary List a study's extraction notes
// @Tags admin-notes
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Success 200 {object} dto.APIResponse{data=[]models.ExtractionNote}
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId}/notes [get]
func (c *ExtractionNoteController) ListForStudy(ctx *gin.Context) {
	notes, err := c.service.ListForStudy(ctx.Request.Context(), ctx.Param("studyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if notes == nil {
		notes = []models.ExtractionNote{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notes))
}

// Create adds a note to a study
// @Summary Add an extraction note
// @Description created_by defaults to the authenticated editor
// @Tags admin-notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Param request body dto.ExtractionNoteRequest true "Note"
// @Success 201 {object} dto.APIResponse{data=models.ExtractionNote} "Note created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId}/notes [post]
func (c *ExtractionNoteController) Create(ctx *gin.Context) {
	e, ok := editor(ctx)
	if !ok {
		return
	}
	var req dto.ExtractionNoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	note, err := c.service.Create(ctx.Request.Context(), e, ctx.Param("studyId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(note))
}

// Get returns one note
// @Summary Get an extraction note
// @Tags admin-notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=models.ExtractionNote}
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /api/v1/admin/notes/{id} [get]
func (c *ExtractionNoteController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	note, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note))
}

// Delete removes a note
// @Summary Delete an extraction note
// @Tags admin-notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /api/v1/admin/notes/{id} [delete]
func (c *ExtractionNoteController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Note deleted")
}
