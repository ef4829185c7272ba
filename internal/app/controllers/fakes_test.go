package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

func sampleStudy(studyID string) models.Study {
	return models.Study{
		ID: 1, StudyID: studyID, Title: "Dental caries among schoolchildren", Authors: "Smith J",
		PublicationYear: 2016, StudyDesign: models.StudyDesignCrossSectional, StudySetting: models.StudySettingSchool,
		Province: models.ProvinceOntario, SampleSize: 1200, AgeGroup: models.AgeGroupSchoolAge, AgeMin: 6, AgeMax: 12,
		DataCollectionStart: time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
		DataCollectionEnd:   time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC),
		CariesIndexUsed:     models.CariesIndexPermanentTeeth, ExaminationCriteria: models.ExaminationWHO2013,
		ExtractedBy: "A. Extractor", ExtractionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

type fakeCatalog struct {
	studies    []models.Study
	project    *models.ProjectMetadata
	err        error
	lastFilter models.StudyFilter
	lastSort   models.StudySort
	lastPage   int
	lastQuery  string
}

func (f *fakeCatalog) page(page int) *models.StudyPage {
	return &models.StudyPage{Studies: f.studies, Total: int64(len(f.studies)), Page: page, Size: 20}
}

func (f *fakeCatalog) ListStudies(_ context.Context, filter models.StudyFilter, sort models.StudySort, page int) (*models.StudyPage, error) {
	f.lastFilter, f.lastSort, f.lastPage = filter, sort, page
	if f.err != nil {
		return nil, f.err
	}
	return f.page(page), nil
}

func (f *fakeCatalog) SearchStudies(_ context.Context, query string, page int) (*models.StudyPage, error) {
	f.lastQuery, f.lastPage = query, page
	if f.err != nil {
		return nil, f.err
	}
	if query == "" {
		return &models.StudyPage{Page: 1, Size: 20}, nil
	}
	return f.page(page), nil
}

func (f *fakeCatalog) GetStudyDetail(_ context.Context, studyID string) (*models.StudyDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.studies {
		if s.StudyID == studyID {
			return &models.StudyDetail{Study: s}, nil
		}
	}
	return nil, apperrors.ErrStudyNotFound
}

func (f *fakeCatalog) FilterOptions(context.Context) (*models.FilterOptions, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.FilterOptions{Provinces: []models.Province{models.ProvinceOntario}}, nil
}

func (f *fakeCatalog) ProjectMetadata(context.Context) (*models.ProjectMetadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.project == nil {
		return nil, apperrors.ErrProjectMetadataNotFound
	}
	return f.project, nil
}

type fakeStats struct {
	provinces []models.ProvinceCaries
	err       error
}

func (f *fakeStats) HomeSummary(context.Context) (*models.HomeSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.HomeSummary{
		Overview:      models.Overview{TotalStudies: 1234, TotalParticipants: 98765},
		RecentStudies: []models.Study{sampleStudy("ON-2014-001")},
	}, nil
}

func (f *fakeStats) Overview(context.Context) (*models.Overview, error) {
	return &models.Overview{TotalStudies: 1234}, f.err
}

func (f *fakeStats) Dashboard(context.Context) (*models.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Dashboard{TotalStudies: 3}, nil
}

func (f *fakeStats) CariesByProvince(context.Context) ([]models.ProvinceCaries, error) {
	return f.provinces, f.err
}

func (f *fakeStats) CariesByAge(context.Context) ([]models.AgeCategoryCaries, error) {
	return nil, f.err
}

func (f *fakeStats) TemporalTrends(context.Context) ([]models.DecadeTrend, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.DecadeTrend{{Decade: 2010, AvgPrevalence: 40, AvgDMFT: 1.5, StudyCount: 2}}, nil
}

func (f *fakeStats) PublicationYearTrends(context.Context) ([]models.YearTrend, error) {
	return nil, f.err
}

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Username != "mtremblay" || req.Password != "secret" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.TokenResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, nil
}

type fakeStudyAdmin struct {
	studies    map[string]*models.Study
	lastEditor models.Editor
}

func (f *fakeStudyAdmin) CreateStudy(_ context.Context, editor models.Editor, req *dto.StudyRequest) (*models.Study, error) {
	f.lastEditor = editor
	if _, exists := f.studies[req.StudyID]; exists {
		return nil, apperrors.NewValidationError("study_id", "study with this study_id already exists")
	}
	s, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if s.ExtractedBy == "" {
		s.ExtractedBy = editor.DisplayName()
	}
	f.studies[s.StudyID] = s
	return s, nil
}

func (f *fakeStudyAdmin) GetStudy(_ context.Context, studyID string) (*models.Study, error) {
	s, ok := f.studies[studyID]
	if !ok {
		return nil, apperrors.ErrStudyNotFound
	}
	return s, nil
}

func (f *fakeStudyAdmin) UpdateStudy(ctx context.Context, editor models.Editor, studyID string, req *dto.StudyRequest) (*models.Study, error) {
	if _, err := f.GetStudy(ctx, studyID); err != nil {
		return nil, err
	}
	f.lastEditor = editor
	s, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	f.studies[studyID] = s
	return s, nil
}

func (f *fakeStudyAdmin) DeleteStudy(_ context.Context, studyID string) error {
	if _, ok := f.studies[studyID]; !ok {
		return apperrors.ErrStudyNotFound
	}
	delete(f.studies, studyID)
	return nil
}

func (f *fakeStudyAdmin) VerifyStudy(ctx context.Context, editor models.Editor, studyID string) (*models.Study, error) {
	s, err := f.GetStudy(ctx, studyID)
	if err != nil {
		return nil, err
	}
	name := editor.DisplayName()
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	s.VerifiedBy, s.VerificationDate = &name, &today
	return s, nil
}

type fakeCariesData struct {
	points map[int64]*models.CariesDataPoint
}

func (f *fakeCariesData) ListForStudy(_ context.Context, studyID string) ([]models.CariesDataPoint, error) {
	if studyID != "ON-2014-001" {
		return nil, apperrors.ErrStudyNotFound
	}
	return nil, nil
}

func (f *fakeCariesData) Create(_ context.Context, studyID string, req *dto.CariesDataRequest) (*models.CariesDataPoint, error) {
	if studyID != "ON-2014-001" {
		return nil, apperrors.ErrStudyNotFound
	}
	p, err := req.ToModel(1)
	if err != nil {
		return nil, err
	}
	p.ID = int64(len(f.points) + 1)
	f.points[p.ID] = p
	return p, nil
}

func (f *fakeCariesData) Get(_ context.Context, id int64) (*models.CariesDataPoint, error) {
	p, ok := f.points[id]
	if !ok {
		return nil, apperrors.ErrCariesDataNotFound
	}
	return p, nil
}

func (f *fakeCariesData) Update(ctx context.Context, id int64, req *dto.CariesDataRequest) (*models.CariesDataPoint, error) {
	existing, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := req.ToModel(existing.StudyID)
	if err != nil {
		return nil, err
	}
	p.ID = id
	f.points[id] = p
	return p, nil
}

func (f *fakeCariesData) Delete(ctx context.Context, id int64) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.points, id)
	return nil
}

type fakeNotes struct {
	lastEditor models.Editor
}

func (f *fakeNotes) ListForStudy(context.Context, string) ([]models.ExtractionNote, error) {
	return nil, nil
}

func (f *fakeNotes) Create(_ context.Context, editor models.Editor, _ string, req *dto.ExtractionNoteRequest) (*models.ExtractionNote, error) {
	f.lastEditor = editor
	n := req.ToModel(1)
	if n.CreatedBy == "" {
		n.CreatedBy = editor.DisplayName()
	}
	n.ID = 1
	return n, nil
}

func (f *fakeNotes) Get(_ context.Context, id int64) (*models.ExtractionNote, error) {
	return nil, apperrors.ErrExtractionNoteNotFound
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	return apperrors.ErrExtractionNoteNotFound
}

type fakeProject struct{}

func (fakeProject) List(context.Context) ([]models.ProjectMetadata, error) {
	return []models.ProjectMetadata{{ID: 1, ProjectName: models.DefaultProjectName}}, nil
}

func (fakeProject) Create(_ context.Context, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	m.ID = 2
	return m, nil
}

func (fakeProject) Get(_ context.Context, id int64) (*models.ProjectMetadata, error) {
	if id != 1 {
		return nil, apperrors.ErrProjectMetadataNotFound
	}
	return &models.ProjectMetadata{ID: 1, ProjectName: models.DefaultProjectName}, nil
}

func (fakeProject) Update(ctx context.Context, id int64, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error) {
	return nil, apperrors.ErrProjectMetadataNotFound
}

func (fakeProject) Delete(context.Context, int64) error { return nil }

func (fakeProject) EnsureDefault(context.Context, *models.ProjectMetadata) (bool, error) {
	return false, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var errDatabaseDown = errors.New("connection refused")
