package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
)

// CatalogController serves the public JSON API.
type CatalogController struct {
	catalog services.CatalogService
	stats   services.StatsService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog services.CatalogService, stats services.StatsService) *CatalogController {
	return &CatalogController{catalog: catalog, stats: stats}
}

// TrendsResponse holds both trend series.
type TrendsResponse struct {
	PublicationYears []models.YearTrend   `json:"publication_years"`
	Decades          []models.DecadeTrend `json:"decades"`
}

// ListStudies returns one page of studies
// @Summary List studies
// @Description Lists studies matching the optional filters, 20 per page. A page past the end returns the last page.
// @Tags studies
// @Produce json
// @Param province query string false "Province code" example(ON)
// @Param age_group query string false "Age group" example(school_age)
// @Param caries_index query string false "Caries index" example(DMFT)
// @Param year_from query int false "Earliest publication year (inclusive)"
// @Param year_to query int false "Latest publication year (inclusive)"
// @Param sort query string false "Sort field, prefixed with - for descending" default(-publication_year)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudyListResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or sort"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/studies [get]
func (c *CatalogController) ListStudies(ctx *gin.Context) {
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

// SearchStudies returns one page of search results
// @Summary Search studies
// @Description Case-insensitive substring search over title, authors, journal and notes. The query is matched as given; an empty query returns no studies.
// @Tags studies
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudyListResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/studies/search [get]
func (c *CatalogController) SearchStudies(ctx *gin.Context) {
	result, err := c.catalog.SearchStudies(ctx.Request.Context(), ctx.Query("q"), helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(studyList(result)))
}

// GetStudy returns a study with its child records
// @Summary Get study details
// @Description Returns a study with its caries data, extraction notes and up to five related studies
// @Tags studies
// @Produce json
// @Param studyId path string true "Study identifier" example(ON-2014-001)
// @Success 200 {object} dto.APIResponse{data=dto.StudyDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Study not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/studies/{studyId} [get]
func (c *CatalogController) GetStudy(ctx *gin.Context) {
	detail, err := c.catalog.GetStudyDetail(ctx.Request.Context(), ctx.Param("studyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudyDetail(detail)))
}

// FilterOptions returns the values available to the listing filters
// @Summary Get filter options
// @Tags studies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.FilterOptions}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/studies/filters [get]
func (c *CatalogController) FilterOptions(ctx *gin.Context) {
	options, err := c.catalog.FilterOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(options))
}

// Overview returns the home page summary
// @Summary Get catalog overview
// @Description Totals, recent studies, provincial coverage, age group and index distributions, quick facts
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.HomeSummary}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/stats/overview [get]
func (c *CatalogController) Overview(ctx *gin.Context) {
	summary, err := c.stats.HomeSummary(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}

// Dashboard returns the dashboard aggregates
// @Summary Get dashboard aggregates
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Dashboard}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/stats/dashboard [get]
func (c *CatalogController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.stats.Dashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// Trends returns the per-year and per-decade series
// @Summary Get trend series
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=TrendsResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/stats/trends [get]
func (c *CatalogController) Trends(ctx *gin.Context) {
	years, err := c.stats.PublicationYearTrends(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	decades, err := c.stats.TemporalTrends(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(TrendsResponse{PublicationYears: years, Decades: decades}))
}

// Project returns the published project record
// @Summary Get project metadata
// @Tags project
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProjectMetadataResponse}
// @Failure 404 {object} dto.ErrorResponse "No project metadata recorded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/project [get]
func (c *CatalogController) Project(ctx *gin.Context) {
	m, err := c.catalog.ProjectMetadata(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromProjectMetadata(m)))
}

func studyList(page *models.StudyPage) dto.StudyListResponse {
	return dto.StudyListResponse{
		Studies:    dto.FromStudies(page.Studies),
		Pagination: helpers.NewPaginationInfo(page.Total, page.Page, page.Size),
	}
}
