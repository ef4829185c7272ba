package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

// PlannedAnalyses are listed on the analytics page.
var PlannedAnalyses = []string{
	"Bayesian spatial-temporal modeling",
	"Prevalence trend projections",
	"Risk factor analysis",
	"Geographic hotspot identification",
	"Age-period-cohort effects",
	"Intervention impact assessment",
}

// PageController renders the public HTML pages.
type PageController struct {
	catalog services.CatalogService
	stats   services.StatsService
}

// NewPageController creates a new PageController
func NewPageController(catalog services.CatalogService, stats services.StatsService) *PageController {
	return &PageController{catalog: catalog, stats: stats}
}

// page starts the template data every page needs.
func page(ctx *gin.Context, title, nav string) gin.H {
	return gin.H{
		"Title":       title,
		"Nav":         nav,
		"SearchQuery": ctx.Query("q"),
	}
}

// renderError renders the error page with the status HandleAPIError would use.
func renderError(ctx *gin.Context, err error) {
	status, detail := middleware.ErrorDetail(err)
	message := detail.Message
	if status == http.StatusInternalServerError {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Failed to render page")
		message = "Something went wrong while loading this page."
	}
	if vErr, ok := apperrors.AsValidationError(err); ok {
		message = vErr.Error()
	}

	data := page(ctx, http.StatusText(status), "")
	data["Status"] = status
	data["Message"] = message
	ctx.HTML(status, "error", data)
}

// NotFound renders the 404 page for unknown paths.
func (c *PageController) NotFound(ctx *gin.Context) {
	renderError(ctx, apperrors.NewResourceNotFoundError("The page you asked for does not exist."))
}

// Home renders the overview page.
func (c *PageController) Home(ctx *gin.Context) {
	summary, err := c.stats.HomeSummary(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	data := page(ctx, "Home", "home")
	data["Summary"] = summary
	ctx.HTML(http.StatusOK, "home", data)
}

// StudyList renders the filtered, paginated study listing.
func (c *PageController) StudyList(ctx *gin.Context) {
	var query dto.StudyQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		renderError(ctx, middleware.BindingError(err))
		return
	}
	filter, sort, err := query.ToFilter()
	if err != nil {
		renderError(ctx, err)
		return
	}

	result, err := c.catalog.ListStudies(ctx.Request.Context(), filter, sort, helpers.ParsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	options, err := c.catalog.FilterOptions(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	query.Sort = sort.String()
	data := page(ctx, "Studies", "studies")
	data["Studies"] = result.Studies
	data["Pagination"] = helpers.NewPaginationInfo(result.Total, result.Page, result.Size)
	data["Query"] = ctx.Request.URL.Query()
	data["Filters"] = query
	data["FilterOptions"] = options
	ctx.HTML(http.StatusOK, "study_list", data)
}

// StudySearch renders free-text search results. A blank query shows no
// studies.
func (c *PageController) StudySearch(ctx *gin.Context) {
	result, err := c.catalog.SearchStudies(ctx.Request.Context(), ctx.Query("q"), helpers.ParsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}

	data := page(ctx, "Search", "studies")
	data["Studies"] = result.Studies
	data["Pagination"] = helpers.NewPaginationInfo(result.Total, result.Page, result.Size)
	data["Query"] = ctx.Request.URL.Query()
	ctx.HTML(http.StatusOK, "study_search", data)
}

// StudyDetail renders one study with its data points, notes and related
// studies.
func (c *PageController) StudyDetail(ctx *gin.Context) {
	detail, err := c.catalog.GetStudyDetail(ctx.Request.Context(), ctx.Param("study_id"))
	if err != nil {
		renderError(ctx, err)
		return
	}

	data := page(ctx, detail.Study.StudyID, "studies")
	data["Detail"] = detail
	ctx.HTML(http.StatusOK, "study_detail", data)
}

// Dashboard renders the provincial and age-group tables.
func (c *PageController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.stats.Dashboard(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	data := page(ctx, "Dashboard", "dashboard")
	data["Dashboard"] = dashboard
	ctx.HTML(http.StatusOK, "dashboard", data)
}

// Analytics lists the analyses still to come.
func (c *PageController) Analytics(ctx *gin.Context) {
	data := page(ctx, "Analytics", "analytics")
	data["Features"] = PlannedAnalyses
	ctx.HTML(http.StatusOK, "analytics", data)
}

// Trends renders the per-year and per-decade tables.
func (c *PageController) Trends(ctx *gin.Context) {
	years, err := c.stats.PublicationYearTrends(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	decades, err := c.stats.TemporalTrends(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	data := page(ctx, "Trends", "trends")
	data["YearTrends"] = years
	data["DecadeTrends"] = decades
	ctx.HTML(http.StatusOK, "trends", data)
}

// About renders the project record, if one exists.
func (c *PageController) About(ctx *gin.Context) {
	c.projectPage(ctx, "About", "about")
}

// Methodology renders the review methodology.
func (c *PageController) Methodology(ctx *gin.Context) {
	c.projectPage(ctx, "Methodology", "methodology")
}

// Protocol renders the review protocol.
func (c *PageController) Protocol(ctx *gin.Context) {
	c.projectPage(ctx, "Protocol", "protocol")
}

func (c *PageController) projectPage(ctx *gin.Context, title, name string) {
	var project *models.ProjectMetadata
	m, err := c.catalog.ProjectMetadata(ctx.Request.Context())
	switch {
	case err == nil:
		project = m
	case !apperrors.Is(err, apperrors.ErrResourceNotFound):
		renderError(ctx, err)
		return
	}

	data := page(ctx, title, name)
	data["Project"] = project
	ctx.HTML(http.StatusOK, name, data)
}
