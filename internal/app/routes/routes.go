package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/cariesreview/catalog/internal/app/auth"
	"github.com/cariesreview/catalog/internal/app/controllers"
	"github.com/cariesreview/catalog/internal/middleware"
)

// Controllers groups every controller the router dispatches to.
type Controllers struct {
	Pages           *controllers.PageController
	Charts          *controllers.ChartController
	Catalog         *controllers.CatalogController
	Health          *controllers.HealthController
	Auth            *controllers.AuthController
	StudyAdmin      *controllers.StudyAdminController
	CariesData      *controllers.CariesDataController
	ExtractionNotes *controllers.ExtractionNoteController
	ProjectMetadata *controllers.ProjectMetadataController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- HTML pages ---
	router.GET("/", c.Pages.Home)
	router.GET("/studies/", c.Pages.StudyList)
	router.GET("/studies/search/", c.Pages.StudySearch)
	router.GET("/studies/:study_id/", c.Pages.StudyDetail)
	router.GET("/dashboard/", c.Pages.Dashboard)
	router.GET("/analytics/", c.Pages.Analytics)
	router.GET("/trends/", c.Pages.Trends)
	router.GET("/about/", c.Pages.About)
	router.GET("/methodology/", c.Pages.Methodology)
	router.GET("/protocol/", c.Pages.Protocol)
	router.NoRoute(c.Pages.NotFound)

	// --- Chart data ---
	charts := router.Group("/api")
	{
		charts.GET("/caries-by-province/", c.Charts.CariesByProvince)
		charts.GET("/caries-by-age/", c.Charts.CariesByAge)
		charts.GET("/temporal-trends/", c.Charts.TemporalTrends)
	}

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	// --- Public catalog routes ---
	studies := v1.Group("/studies")
	{
		studies.GET("", c.Catalog.ListStudies)
		studies.GET("/search", c.Catalog.SearchStudies)
		studies.GET("/filters", c.Catalog.FilterOptions)
		studies.GET("/:studyId", c.Catalog.GetStudy)
	}
	stats := v1.Group("/stats")
	{
		stats.GET("/overview", c.Catalog.Overview)
		stats.GET("/dashboard", c.Catalog.Dashboard)
		stats.GET("/trends", c.Catalog.Trends)
	}
	v1.GET("/project", c.Catalog.Project)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
	}

	// --- Editor routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(appauth.PermEditCatalog))
	{
		admin.GET("/me", c.Auth.Me)

		adminStudies := admin.Group("/studies")
		{
			adminStudies.GET("", c.StudyAdmin.ListStudies)
			adminStudies.POST("", c.StudyAdmin.CreateStudy)
			adminStudies.GET("/:studyId", c.StudyAdmin.GetStudy)
			adminStudies.PUT("/:studyId", c.StudyAdmin.UpdateStudy)
			adminStudies.DELETE("/:studyId", c.StudyAdmin.DeleteStudy)
			adminStudies.POST("/:studyId/verify", authMiddleware.RoleRequired(appauth.PermVerifyStudies), c.StudyAdmin.VerifyStudy)

			adminStudies.GET("/:studyId/caries-data", c.CariesData.ListForStudy)
			adminStudies.POST("/:studyId/caries-data", c.CariesData.Create)
			adminStudies.GET("/:studyId/notes", c.ExtractionNotes.ListForStudy)
			adminStudies.POST("/:studyId/notes", c.ExtractionNotes.Create)
		}

		cariesData := admin.Group("/caries-data")
		{
			cariesData.GET("/:id", c.CariesData.Get)
			cariesData.PUT("/:id", c.CariesData.Update)
			cariesData.DELETE("/:id", c.CariesData.Delete)
		}

		notes := admin.Group("/notes")
		{
			notes.GET("/:id", c.ExtractionNotes.Get)
			notes.DELETE("/:id", c.ExtractionNotes.Delete)
		}

		project := admin.Group("/project-metadata")
		{
			project.GET("", c.ProjectMetadata.List)
			project.POST("", c.ProjectMetadata.Create)
			project.GET("/:id", c.ProjectMetadata.Get)
			project.PUT("/:id", c.ProjectMetadata.Update)
			project.DELETE("/:id", c.ProjectMetadata.Delete)
		}
	}
}
