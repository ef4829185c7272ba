package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/middleware"
)

// ChartController serves the chart data endpoints. Responses are the bare
// {"data": [...]} payload read by the page charts.
type ChartController struct {
	stats services.StatsService
}

// NewChartController creates a new ChartController
func NewChartController(stats services.StatsService) *ChartController {
	return &ChartController{stats: stats}
}

// chart writes rows as a chart payload, with an empty list for no rows.
func chart[T any](ctx *gin.Context, rows []T, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	ctx.JSON(http.StatusOK, dto.ChartResponse{Data: rows})
}

// CariesByProvince returns caries data averaged per province
// @Summary Caries data by province
// @Description Average prevalence and dmft/DMFT of all data points per study province, highest prevalence first
// @Tags charts
// @Produce json
// @Success 200 {object} dto.ChartResponse{data=[]models.ProvinceCaries}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/caries-by-province/ [get]
func (c *ChartController) CariesByProvince(ctx *gin.Context) {
	rows, err := c.stats.CariesByProvince(ctx.Request.Context())
	chart(ctx, rows, err)
}

// CariesByAge returns caries data averaged per age category
// @Summary Caries data by age category
// @Description Average prevalence and dmft/DMFT per age category label, in label order
// @Tags charts
// @Produce json
// @Success 200 {object} dto.ChartResponse{data=[]models.AgeCategoryCaries}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/caries-by-age/ [get]
func (c *ChartController) CariesByAge(ctx *gin.Context) {
	rows, err := c.stats.CariesByAge(ctx.Request.Context())
	chart(ctx, rows, err)
}

// TemporalTrends returns caries data averaged per decade of data collection
// @Summary Caries data by decade
// @Description Average prevalence and dmft/DMFT per decade of the study's data collection start
// @Tags charts
// @Produce json
// @Success 200 {object} dto.ChartResponse{data=[]models.DecadeTrend}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/temporal-trends/ [get]
func (c *ChartController) TemporalTrends(ctx *gin.Context) {
	rows, err := c.stats.TemporalTrends(ctx.Request.Context())
	chart(ctx, rows, err)
}
