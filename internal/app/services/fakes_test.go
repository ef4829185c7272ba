package services

import (
	"context"
	"time"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// fakeStudyStore keeps studies in memory keyed by study_id.
type fakeStudyStore struct {
	studies  map[string]*models.Study
	nextID   int64
	children struct {
		points []*models.CariesDataPoint
		notes  []*models.ExtractionNote
	}
	recentLimit  uint64
	relatedLimit uint64
	listCalls    int
	searchCalls  int
	lastQuery    string
	lastSort     models.StudySort
	lastPageSize int
	verified     struct {
		by   string
		date time.Time
	}
	err error
}

func newFakeStudyStore(studies ...*models.Study) *fakeStudyStore {
	f := &fakeStudyStore{studies: map[string]*models.Study{}}
	for _, s := range studies {
		f.nextID++
		s.ID = f.nextID
		f.studies[s.StudyID] = s
	}
	return f
}

func (f *fakeStudyStore) Create(ctx context.Context, s *models.Study) error {
	return f.CreateWithChildren(ctx, s, nil, nil)
}

func (f *fakeStudyStore) CreateWithChildren(_ context.Context, s *models.Study, points []*models.CariesDataPoint, notes []*models.ExtractionNote) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.studies[s.StudyID]; ok {
		return apperrors.NewValidationError("study_id", "already exists")
	}
	f.nextID++
	s.ID = f.nextID
	f.studies[s.StudyID] = s
	for _, p := range points {
		p.StudyID = s.ID
	}
	for _, n := range notes {
		n.StudyID = s.ID
	}
	f.children.points = append(f.children.points, points...)
	f.children.notes = append(f.children.notes, notes...)
	return nil
}

func (f *fakeStudyStore) GetByStudyID(_ context.Context, studyID string) (*models.Study, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.studies[studyID]
	if !ok {
		return nil, apperrors.ErrStudyNotFound
	}
	return s, nil
}

func (f *fakeStudyStore) byID(id int64) (*models.Study, bool) {
	for _, s := range f.studies {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

func (f *fakeStudyStore) Update(_ context.Context, s *models.Study) error {
	old, ok := f.byID(s.ID)
	if !ok {
		return apperrors.ErrStudyNotFound
	}
	delete(f.studies, old.StudyID)
	f.studies[s.StudyID] = s
	return nil
}

func (f *fakeStudyStore) Verify(_ context.Context, id int64, verifiedBy string, date time.Time) (*models.Study, error) {
	s, ok := f.byID(id)
	if !ok {
		return nil, apperrors.ErrStudyNotFound
	}
	f.verified.by, f.verified.date = verifiedBy, date
	s.VerifiedBy = &verifiedBy
	s.VerificationDate = &date
	return s, nil
}

func (f *fakeStudyStore) Delete(_ context.Context, id int64) error {
	s, ok := f.byID(id)
	if !ok {
		return apperrors.ErrStudyNotFound
	}
	delete(f.studies, s.StudyID)
	return nil
}

func (f *fakeStudyStore) List(_ context.Context, _ models.StudyFilter, sort models.StudySort, page, size int) (*models.StudyPage, error) {
	f.listCalls++
	f.lastSort = sort
	f.lastPageSize = size
	return &models.StudyPage{Studies: f.all(), Total: int64(len(f.studies)), Page: page, Size: size}, nil
}

func (f *fakeStudyStore) Search(_ context.Context, query string, page, size int) (*models.StudyPage, error) {
	f.searchCalls++
	f.lastQuery = query
	return &models.StudyPage{Studies: f.all(), Total: int64(len(f.studies)), Page: page, Size: size}, nil
}

func (f *fakeStudyStore) Related(_ context.Context, s *models.Study, limit uint64) ([]models.Study, error) {
	f.relatedLimit = limit
	var related []models.Study
	for _, other := range f.studies {
		if other.ID != s.ID && other.Province == s.Province {
			related = append(related, *other)
		}
	}
	return related, nil
}

func (f *fakeStudyStore) Recent(_ context.Context, limit uint64) ([]models.Study, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recentLimit = limit
	return f.all(), nil
}

func (f *fakeStudyStore) FilterOptions(context.Context) (*models.FilterOptions, error) {
	return &models.FilterOptions{}, nil
}

func (f *fakeStudyStore) all() []models.Study {
	out := make([]models.Study, 0, len(f.studies))
	for _, s := range f.studies {
		out = append(out, *s)
	}
	return out
}

// fakeCariesDataStore enforces the one-point-per-stratum rule like the
// database does.
type fakeCariesDataStore struct {
	points map[int64]*models.CariesDataPoint
	nextID int64
}

func newFakeCariesDataStore() *fakeCariesDataStore {
	return &fakeCariesDataStore{points: map[int64]*models.CariesDataPoint{}}
}

func (f *fakeCariesDataStore) Create(_ context.Context, p *models.CariesDataPoint) error {
	for _, other := range f.points {
		if other.StudyID == p.StudyID && other.Stratum() == p.Stratum() {
			return apperrors.NewValidationError("age_category", "already reported")
		}
	}
	f.nextID++
	p.ID = f.nextID
	f.points[p.ID] = p
	return nil
}

func (f *fakeCariesDataStore) GetByID(_ context.Context, id int64) (*models.CariesDataPoint, error) {
	p, ok := f.points[id]
	if !ok {
		return nil, apperrors.ErrCariesDataNotFound
	}
	return p, nil
}

func (f *fakeCariesDataStore) ListByStudy(_ context.Context, studyID int64) ([]models.CariesDataPoint, error) {
	var out []models.CariesDataPoint
	for _, p := range f.points {
		if p.StudyID == studyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeCariesDataStore) Update(_ context.Context, p *models.CariesDataPoint) error {
	if _, ok := f.points[p.ID]; !ok {
		return apperrors.ErrCariesDataNotFound
	}
	f.points[p.ID] = p
	return nil
}

func (f *fakeCariesDataStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.points[id]; !ok {
		return apperrors.ErrCariesDataNotFound
	}
	delete(f.points, id)
	return nil
}

type fakeNoteStore struct {
	notes  map[int64]*models.ExtractionNote
	nextID int64
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: map[int64]*models.ExtractionNote{}}
}

func (f *fakeNoteStore) Create(_ context.Context, n *models.ExtractionNote) error {
	f.nextID++
	n.ID = f.nextID
	f.notes[n.ID] = n
	return nil
}

func (f *fakeNoteStore) GetByID(_ context.Context, id int64) (*models.ExtractionNote, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, apperrors.ErrExtractionNoteNotFound
	}
	return n, nil
}

func (f *fakeNoteStore) ListByStudy(_ context.Context, studyID int64) ([]models.ExtractionNote, error) {
	var out []models.ExtractionNote
	for _, n := range f.notes {
		if n.StudyID == studyID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return apperrors.ErrExtractionNoteNotFound
	}
	delete(f.notes, id)
	return nil
}

type fakeProjectStore struct {
	records []*models.ProjectMetadata
}

func (f *fakeProjectStore) Create(_ context.Context, m *models.ProjectMetadata) error {
	m.ID = int64(len(f.records) + 1)
	f.records = append(f.records, m)
	return nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id int64) (*models.ProjectMetadata, error) {
	for _, m := range f.records {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrProjectMetadataNotFound
}

func (f *fakeProjectStore) First(ctx context.Context) (*models.ProjectMetadata, error) {
	if len(f.records) == 0 {
		return nil, apperrors.ErrProjectMetadataNotFound
	}
	return f.records[0], nil
}

func (f *fakeProjectStore) List(context.Context) ([]models.ProjectMetadata, error) {
	out := make([]models.ProjectMetadata, 0, len(f.records))
	for _, m := range f.records {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeProjectStore) Update(_ context.Context, m *models.ProjectMetadata) error {
	for i, existing := range f.records {
		if existing.ID == m.ID {
			f.records[i] = m
			return nil
		}
	}
	return apperrors.ErrProjectMetadataNotFound
}

func (f *fakeProjectStore) Delete(_ context.Context, id int64) error {
	for i, m := range f.records {
		if m.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrProjectMetadataNotFound
}

// fakeAggregateStore returns canned aggregates and records the coverage
// limit it was asked for.
type fakeAggregateStore struct {
	overview      models.Overview
	coverageLimit uint64
	err           error
}

func (f *fakeAggregateStore) Overview(context.Context) (*models.Overview, error) {
	if f.err != nil {
		return nil, f.err
	}
	o := f.overview
	return &o, nil
}

func (f *fakeAggregateStore) ProvinceCoverage(_ context.Context, limit uint64) ([]models.ProvinceCoverage, error) {
	f.coverageLimit = limit
	return []models.ProvinceCoverage{{Province: models.ProvinceOntario, StudyCount: 2, TotalParticipants: 900}}, nil
}

func (f *fakeAggregateStore) AgeGroupDistribution(context.Context) ([]models.CategoryCount, error) {
	return []models.CategoryCount{{Value: "school_age", Label: "School age", Count: 2}}, nil
}

func (f *fakeAggregateStore) CariesIndexUsage(context.Context) ([]models.CategoryCount, error) {
	return []models.CategoryCount{{Value: "DMFT", Label: "DMFT (permanent teeth)", Count: 2}}, nil
}

func (f *fakeAggregateStore) QuickFacts(context.Context) (*models.QuickFacts, error) {
	return &models.QuickFacts{ProvincesCovered: 1, YearsSpan: 3, AverageSampleSize: 450}, nil
}

func (f *fakeAggregateStore) CariesByProvince(context.Context) ([]models.ProvinceCaries, error) {
	return []models.ProvinceCaries{{Province: models.ProvinceOntario, AvgPrevalence: 40, AvgDMFT: 2, StudyCount: 2}}, nil
}

func (f *fakeAggregateStore) CariesByAge(context.Context) ([]models.AgeCategoryCaries, error) {
	return []models.AgeCategoryCaries{{AgeCategory: "12 years", AvgPrevalence: 40, AvgDMFT: 2, Count: 2}}, nil
}

func (f *fakeAggregateStore) TemporalTrends(context.Context) ([]models.DecadeTrend, error) {
	return []models.DecadeTrend{{Decade: 2010, AvgPrevalence: 40, AvgDMFT: 2, StudyCount: 2}}, nil
}

func (f *fakeAggregateStore) DashboardProvinces(context.Context) ([]models.ProvinceSummary, error) {
	return []models.ProvinceSummary{{Province: models.ProvinceOntario, StudyCount: 2}}, nil
}

func (f *fakeAggregateStore) DashboardAgeGroups(context.Context) ([]models.AgeGroupCaries, error) {
	return []models.AgeGroupCaries{{AgeGroup: models.AgeGroupSchoolAge, AvgDMFT: 2, StudyCount: 2}}, nil
}

func (f *fakeAggregateStore) PublicationYearTrends(context.Context) ([]models.YearTrend, error) {
	return []models.YearTrend{{PublicationYear: 2016, StudyCount: 2, AvgSampleSize: 450}}, nil
}

func ptr[T any](v T) *T { return &v }

func validStudy(studyID string) *models.Study {
	return &models.Study{
		StudyID:             studyID,
		Title:               "Caries among Ontario schoolchildren",
		Authors:             "Smith J, Tremblay M",
		PublicationYear:     2016,
		StudyDesign:         models.StudyDesignCrossSectional,
		StudySetting:        models.StudySettingSchool,
		Province:            models.ProvinceOntario,
		SampleSize:          1200,
		AgeGroup:            models.AgeGroupSchoolAge,
		AgeMin:              6,
		AgeMax:              12,
		DataCollectionStart: time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
		DataCollectionEnd:   time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC),
		CariesIndexUsed:     models.CariesIndexPermanentTeeth,
		ExaminationCriteria: models.ExaminationWHO2013,
		ExtractedBy:         "A. Extractor",
	}
}
