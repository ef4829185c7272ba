package services

import (
	"context"
	"time"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/repositories"
)

// StudyStore is the study persistence used by the services.
type StudyStore interface {
	Create(ctx context.Context, s *models.Study) error
	CreateWithChildren(ctx context.Context, s *models.Study, points []*models.CariesDataPoint, notes []*models.ExtractionNote) error
	GetByStudyID(ctx context.Context, studyID string) (*models.Study, error)
	Update(ctx context.Context, s *models.Study) error
	Verify(ctx context.Context, id int64, verifiedBy string, date time.Time) (*models.Study, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter models.StudyFilter, sort models.StudySort, page, size int) (*models.StudyPage, error)
	Search(ctx context.Context, query string, page, size int) (*models.StudyPage, error)
	Related(ctx context.Context, s *models.Study, limit uint64) ([]models.Study, error)
	Recent(ctx context.Context, limit uint64) ([]models.Study, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

// CariesDataStore is the data point persistence used by the services.
type CariesDataStore interface {
	Create(ctx context.Context, p *models.CariesDataPoint) error
	GetByID(ctx context.Context, id int64) (*models.CariesDataPoint, error)
	ListByStudy(ctx context.Context, studyID int64) ([]models.CariesDataPoint, error)
	Update(ctx context.Context, p *models.CariesDataPoint) error
	Delete(ctx context.Context, id int64) error
}

// ExtractionNoteStore is the note persistence used by the services.
type ExtractionNoteStore interface {
	Create(ctx context.Context, n *models.ExtractionNote) error
	GetByID(ctx context.Context, id int64) (*models.ExtractionNote, error)
	ListByStudy(ctx context.Context, studyID int64) ([]models.ExtractionNote, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectMetadataStore is the project metadata persistence used by the services.
type ProjectMetadataStore interface {
	Create(ctx context.Context, m *models.ProjectMetadata) error
	GetByID(ctx context.Context, id int64) (*models.ProjectMetadata, error)
	First(ctx context.Context) (*models.ProjectMetadata, error)
	List(ctx context.Context) ([]models.ProjectMetadata, error)
	Update(ctx context.Context, m *models.ProjectMetadata) error
	Delete(ctx context.Context, id int64) error
}

// AggregateStore runs the catalog's group-by queries.
type AggregateStore interface {
	Overview(ctx context.Context) (*models.Overview, error)
	ProvinceCoverage(ctx context.Context, limit uint64) ([]models.ProvinceCoverage, error)
	AgeGroupDistribution(ctx context.Context) ([]models.CategoryCount, error)
	CariesIndexUsage(ctx context.Context) ([]models.CategoryCount, error)
	QuickFacts(ctx context.Context) (*models.QuickFacts, error)
	CariesByProvince(ctx context.Context) ([]models.ProvinceCaries, error)
	CariesByAge(ctx context.Context) ([]models.AgeCategoryCaries, error)
	TemporalTrends(ctx context.Context) ([]models.DecadeTrend, error)
	DashboardProvinces(ctx context.Context) ([]models.ProvinceSummary, error)
	DashboardAgeGroups(ctx context.Context) ([]models.AgeGroupCaries, error)
	PublicationYearTrends(ctx context.Context) ([]models.YearTrend, error)
}

// Services holds every service of the application.
type Services struct {
	Auth            AuthService
	Catalog         CatalogService
	Stats           StatsService
	StudyAdmin      StudyAdminService
	CariesData      CariesDataService
	ExtractionNotes ExtractionNoteService
	ProjectMetadata ProjectMetadataService
}

// NewServices wires the services to the repositories. pageSize is the
// listing page size.
func NewServices(repos *repositories.Repositories, editors EditorDirectory, tokens TokenIssuer, pageSize int) *Services {
	return &Services{
		Auth:            NewAuthService(editors, tokens),
		Catalog:         NewCatalogService(repos.StudyRepository, repos.CariesDataRepository, repos.ExtractionNoteRepository, repos.ProjectMetadataRepository, pageSize),
		Stats:           NewStatsService(repos.AggregateRepository, repos.StudyRepository),
		StudyAdmin:      NewStudyAdminService(repos.StudyRepository),
		CariesData:      NewCariesDataService(repos.CariesDataRepository, repos.StudyRepository),
		ExtractionNotes: NewExtractionNoteService(repos.ExtractionNoteRepository, repos.StudyRepository),
		ProjectMetadata: NewProjectMetadataService(repos.ProjectMetadataRepository),
	}
}
