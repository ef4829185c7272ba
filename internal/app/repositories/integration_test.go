package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cariesreview/catalog/internal/app/migrations"
	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/db"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// openTestDatabase connects to CARIES_TEST_DATABASE_URL, applies the schema
// and empties every table. Tests using it are skipped when the variable is
// unset.
func openTestDatabase(t *testing.T) *Repositories {
	t.Helper()
	url := os.Getenv("CARIES_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CARIES_TEST_DATABASE_URL not set")
	}

	conn, err := db.Connect(url, nil)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	ctx := context.Background()
	_, err = migrations.NewMigrator(conn.Pool).Migrate(ctx)
	require.NoError(t, err)
	_, err = conn.Pool.Exec(ctx, "TRUNCATE studies, caries_data, extraction_notes, project_metadata RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return NewRepositories(conn.Pool)
}

func insertStudyWithDMFT(t *testing.T, repos *Repositories, studyID string, province models.Province, start time.Time, dmft float64) *models.Study {
	t.Helper()
	s := newStudy()
	s.StudyID = studyID
	s.Province = province
	s.DataCollectionStart = start
	s.DataCollectionEnd = start.AddDate(1, 0, 0)
	points := []*models.CariesDataPoint{{
		Sex: models.SexMixed, AgeCategory: "12 years", SampleSizeGroup: 100, CariesPrevalence: 40, MeanDMFT: dmft,
	}}
	require.NoError(t, repos.StudyRepository.CreateWithChildren(context.Background(), s, points, nil))
	return s
}

func TestIntegrationStudyIDIsUnique(t *testing.T) {
	repos := openTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, repos.StudyRepository.Create(ctx, newStudy()))
	err := repos.StudyRepository.Create(ctx, newStudy())

	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "study_id", vErr.Field())
}

func TestIntegrationPublicationYearRange(t *testing.T) {
	repos := openTestDatabase(t)
	s := newStudy()
	s.PublicationYear = 1899

	vErr, ok := apperrors.AsValidationError(repos.StudyRepository.Create(context.Background(), s))
	require.True(t, ok)
	assert.Equal(t, "publication_year", vErr.Field())
}

func TestIntegrationStratumIsUnique(t *testing.T) {
	repos := openTestDatabase(t)
	ctx := context.Background()
	s := insertStudyWithDMFT(t, repos, "ON-1", models.ProvinceOntario, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), 2)

	err := repos.CariesDataRepository.Create(ctx, &models.CariesDataPoint{
		StudyID: s.ID, Sex: models.SexMixed, AgeCategory: "12 years", SampleSizeGroup: 50, CariesPrevalence: 10, MeanDMFT: 1,
	})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "age_category", vErr.Field())
}

func TestIntegrationSearchAndFilter(t *testing.T) {
	repos := openTestDatabase(t)
	ctx := context.Background()
	insertStudyWithDMFT(t, repos, "ON-1", models.ProvinceOntario, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	insertStudyWithDMFT(t, repos, "QC-1", models.ProvinceQuebec, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), 1)

	page, err := repos.StudyRepository.Search(ctx, "caries AMONG", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	empty, err := repos.StudyRepository.Search(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, empty.Studies)

	province := models.ProvinceQuebec
	filtered, err := repos.StudyRepository.List(ctx, models.StudyFilter{Province: &province}, models.StudySort{Field: "publication_year", Desc: true}, 1, 20)
	require.NoError(t, err)
	require.Len(t, filtered.Studies, 1)
	assert.Equal(t, "QC-1", filtered.Studies[0].StudyID)
}

func TestIntegrationProvinceAggregate(t *testing.T) {
	repos := openTestDatabase(t)
	ctx := context.Background()
	start := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	insertStudyWithDMFT(t, repos, "ON-1", models.ProvinceOntario, start, 2)
	insertStudyWithDMFT(t, repos, "ON-2", models.ProvinceOntario, start, 4)
	insertStudyWithDMFT(t, repos, "QC-1", models.ProvinceQuebec, start, 1)

	rows, err := repos.AggregateRepository.CariesByProvince(ctx)
	require.NoError(t, err)

	byProvince := map[models.Province]models.ProvinceCaries{}
	for _, r := range rows {
		byProvince[r.Province] = r
	}
	assert.InDelta(t, 3.0, byProvince[models.ProvinceOntario].AvgDMFT, 1e-9)
	assert.Equal(t, int64(2), byProvince[models.ProvinceOntario].StudyCount)
	assert.InDelta(t, 1.0, byProvince[models.ProvinceQuebec].AvgDMFT, 1e-9)
	assert.Equal(t, int64(1), byProvince[models.ProvinceQuebec].StudyCount)

	trends, err := repos.AggregateRepository.TemporalTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, 2010, trends[0].Decade)
}

func TestIntegrationDeleteCascades(t *testing.T) {
	repos := openTestDatabase(t)
	ctx := context.Background()
	s := insertStudyWithDMFT(t, repos, "ON-1", models.ProvinceOntario, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), 2)

	note := &models.ExtractionNote{StudyID: s.ID, NoteType: models.NoteTypeOther, NoteText: "n", CreatedBy: "A. Extractor"}
	require.NoError(t, repos.ExtractionNoteRepository.Create(ctx, note))
	points, err := repos.CariesDataRepository.ListByStudy(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, points, 1)

	require.NoError(t, repos.StudyRepository.Delete(ctx, s.ID))

	_, err = repos.CariesDataRepository.GetByID(ctx, points[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrCariesDataNotFound)
	_, err = repos.ExtractionNoteRepository.GetByID(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrExtractionNoteNotFound)
}
