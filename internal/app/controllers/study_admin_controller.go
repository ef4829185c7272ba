package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
)

// StudyAdminController handles study editing
type StudyAdminController struct {
	catalog services.CatalogService
	admin   services.StudyAdminService
}

// NewStudyAdminController creates a new StudyAdminController
func NewStudyAdminController(catalog services.CatalogService, admin services.StudyAdminService) *StudyAdminController {
	return &StudyAdminController{catalog: catalog, admin: admin}
}

// ListStudies lists studies for editing
// @Summary List studies for editing
// @Description Same filters, sort and paging as the public listing
// @Tags admin-studies
// @Produce json
// @Security BearerAuth
// @Param province query string false "Province code"
// @Param age_group query string false "Age group"
// @Param caries_index query string false "Caries index"
// @Param year_from query int false "Earliest publication year"
// @Param year_to query int false "Latest publication year"
// @Param sort query string false "Sort field" default(-publication_year)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudyListResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or sort"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/studies [get]
func (c *StudyAdminController) ListStudies(ctx *gin.Context) {
	var query dto.StudyQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}
	filter, sort, err := query.ToFilter()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.catalog.ListStudies(ctx.Request.Context(), filter, sort, helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(studyList(result)))
}

// CreateStudy creates a study
// @Summary Create a study
// @Description Creates a study. Optional caries_data and extraction_notes are stored in the same transaction; extracted_by and created_by default to the editor.
// @Tags admin-studies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudyRequest true "Study"
// @Success 201 {object} dto.APIResponse{data=dto.StudyResponse} "Study created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed; field names the offending field"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/studies [post]
func (c *StudyAdminController) CreateStudy(ctx *gin.Context) {
	e, ok := editor(ctx)
	if !ok {
		return
	}
	var req dto.StudyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	study, err := c.admin.CreateStudy(ctx.Request.Context(), e, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromStudy(study)))
}

// GetStudy returns a study for editing
// @Summary Get a study
// @Tags admin-studies
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Success 200 {object} dto.APIResponse{data=dto.StudyResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId} [get]
func (c *StudyAdminController) GetStudy(ctx *gin.Context) {
	study, err := c.admin.GetStudy(ctx.Request.Context(), ctx.Param("studyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudy(study)))
}

// UpdateStudy updates a study
// @Summary Update a study
// @Description Replaces the study's fields. Inline caries_data and extraction_notes are ignored.
// @Tags admin-studies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Param request body dto.StudyRequest true "Study"
// @Success 200 {object} dto.APIResponse{data=dto.StudyResponse} "Study updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId} [put]
func (c *StudyAdminController) UpdateStudy(ctx *gin.Context) {
	e, ok := editor(ctx)
	if !ok {
		return
	}
	var req dto.StudyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	study, err := c.admin.UpdateStudy(ctx.Request.Context(), e, ctx.Param("studyId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudy(study)))
}

// DeleteStudy deletes a study
// @Summary Delete a study
// @Description Deletes a study together with its caries data and extraction notes
// @Tags admin-studies
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Study deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId} [delete]
func (c *StudyAdminController) DeleteStudy(ctx *gin.Context) {
	if err := c.admin.DeleteStudy(ctx.Request.Context(), ctx.Param("studyId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Study deleted")
}

// VerifyStudy records the editor as the study's verifier
// @Summary Verify a study
// @Description Sets verified_by to the editor and verification_date to today. Verifier role only.
// @Tags admin-studies
// @Produce json
// @Security BearerAuth
// @Param studyId path string true "Study identifier"
// @Success 200 {object} dto.APIResponse{data=dto.StudyResponse} "Study verified"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Editor is not a verifier"
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Router /api/v1/admin/studies/{studyId}/verify [post]
func (c *StudyAdminController) VerifyStudy(ctx *gin.Context) {
	e, ok := editor(ctx)
	if !ok {
		return
	}

	study, err := c.admin.VerifyStudy(ctx.Request.Context(), e, ctx.Param("studyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudy(study)))
}
