package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appControllers "github.com/cariesreview/catalog/internal/app/controllers"
	appMigrations "github.com/cariesreview/catalog/internal/app/migrations"
	appRepos "github.com/cariesreview/catalog/internal/app/repositories"
	appRoutes "github.com/cariesreview/catalog/internal/app/routes"
	appServices "github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/config"
	"github.com/cariesreview/catalog/internal/db"
	appMiddleware "github.com/cariesreview/catalog/internal/middleware"
	pkgAuth "github.com/cariesreview/catalog/internal/pkg/auth"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
	"github.com/cariesreview/catalog/internal/pkg/logger"
	"github.com/cariesreview/catalog/internal/seed"
	"github.com/cariesreview/catalog/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Renderer       *web.Renderer
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase establishes the database connection.
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool).Migrate(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects, migrates and seeds the default project metadata.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := Migrate(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	project := appServices.NewProjectMetadataService(appRepos.NewProjectMetadataRepository(database.Pool))
	if err := seed.CreateDefaultData(ctx, project, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	if len(cfg.Editors) == 0 {
		lgr.Warn().Msg("No editors configured; the editing API will reject every login")
	}

	deps.Services = appServices.NewServices(deps.Repos, cfg, deps.JWTService, cfg.Server.PageSize)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	renderer, err := web.NewRenderer()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to parse page templates")
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	deps.Renderer = renderer

	s := deps.Services
	deps.Controllers = &appRoutes.Controllers{
		Pages:           appControllers.NewPageController(s.Catalog, s.Stats),
		Charts:          appControllers.NewChartController(s.Stats),
		Catalog:         appControllers.NewCatalogController(s.Catalog, s.Stats),
		Health:          appControllers.NewHealthController(database),
		Auth:            appControllers.NewAuthController(s.Auth),
		StudyAdmin:      appControllers.NewStudyAdminController(s.Catalog, s.StudyAdmin),
		CariesData:      appControllers.NewCariesDataController(s.CariesData),
		ExtractionNotes: appControllers.NewExtractionNoteController(s.ExtractionNotes),
		ProjectMetadata: appControllers.NewProjectMetadataController(s.ProjectMetadata),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterBindingValidator()

	router := gin.New()
	router.HTMLRender = deps.Renderer
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
