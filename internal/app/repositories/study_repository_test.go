package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// anyArgs matches n placeholder arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func studyRows() *pgxmock.Rows {
	return pgxmock.NewRows(studyColumns)
}

func addStudyRow(rows *pgxmock.Rows, id int64, studyID string, province models.Province, year int) *pgxmock.Rows {
	return rows.AddRow(
		id, studyID, "Caries in "+string(province), "Smith J", nil, year, nil, nil,
		models.StudyDesignCrossSectional, models.StudySettingSchool, province, nil, 250, models.AgeGroupSchoolAge,
		6.0, 12.0, time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC), models.CariesIndexPermanentTeeth,
		models.ExaminationWHO2013, nil, nil, "A. Extractor", fixedTime,
		nil, nil, nil, fixedTime, fixedTime,
	)
}

func newStudy() *models.Study {
	return &models.Study{
		StudyID:             "ON-2014-001",
		Title:               "Dental caries among Ontario schoolchildren",
		Authors:             "Smith J",
		PublicationYear:     2016,
		StudyDesign:         models.StudyDesignCrossSectional,
		StudySetting:        models.StudySettingSchool,
		Province:            models.ProvinceOntario,
		SampleSize:          250,
		AgeGroup:            models.AgeGroupSchoolAge,
		AgeMin:              6,
		AgeMax:              12,
		DataCollectionStart: time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
		DataCollectionEnd:   time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
		CariesIndexUsed:     models.CariesIndexPermanentTeeth,
		ExaminationCriteria: models.ExaminationWHO2013,
		ExtractedBy:         "A. Extractor",
	}
}

func TestStudyRepositoryCreateFillsGeneratedFields(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO studies")).
		WithArgs(anyArgs(len(studyWriteColumns))...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "extraction_date", "created_at", "updated_at"}).
			AddRow(int64(7), fixedTime, fixedTime, fixedTime))

	s := newStudy()
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, fixedTime, s.ExtractionDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositoryCreateReportsDuplicateStudyID(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO studies")).
		WithArgs(anyArgs(len(studyWriteColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "studies_study_id_key"})

	err := repo.Create(context.Background(), newStudy())
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "study_id", vErr.Field())
}

func TestStudyRepositoryCreateReportsCheckViolationColumn(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO studies")).
		WithArgs(anyArgs(len(studyWriteColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "studies_publication_year_check", TableName: "studies"})

	err := repo.Create(context.Background(), newStudy())
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "publication_year", vErr.Field())
}

func TestStudyRepositoryCreateWithChildrenRollsBackOnDuplicateStratum(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO studies")).
		WithArgs(anyArgs(len(studyWriteColumns))...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "extraction_date", "created_at", "updated_at"}).
			AddRow(int64(3), fixedTime, fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO caries_data")).
		WithArgs(anyArgs(14)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO caries_data")).
		WithArgs(anyArgs(14)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "caries_data_stratum_key"})
	mock.ExpectRollback()

	points := []*models.CariesDataPoint{
		{Sex: models.SexMale, AgeCategory: "12 years", SampleSizeGroup: 100, CariesPrevalence: 40, MeanDMFT: 1.2},
		{Sex: models.SexMale, AgeCategory: "12 years", SampleSizeGroup: 100, CariesPrevalence: 45, MeanDMFT: 1.4},
	}
	err := repo.CreateWithChildren(context.Background(), newStudy(), points, nil)

	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "caries_data[1].age_category", vErr.Field())
	assert.Equal(t, int64(3), points[0].StudyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositoryCreateWithChildrenCommits(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO studies")).
		WithArgs(anyArgs(len(studyWriteColumns))...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "extraction_date", "created_at", "updated_at"}).
			AddRow(int64(3), fixedTime, fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO extraction_notes")).
		WithArgs(int64(3), "quality", "Response rate not reported", "A. Extractor").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), fixedTime))
	mock.ExpectCommit()

	notes := []*models.ExtractionNote{{NoteType: models.NoteTypeQuality, NoteText: "Response rate not reported", CreatedBy: "A. Extractor"}}
	require.NoError(t, repo.CreateWithChildren(context.Background(), newStudy(), nil, notes))
	assert.Equal(t, int64(9), notes[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositoryGetByStudyID(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM studies WHERE study_id = $1")).
		WithArgs("ON-2014-001").
		WillReturnRows(addStudyRow(studyRows(), 1, "ON-2014-001", models.ProvinceOntario, 2016))

	s, err := repo.GetByStudyID(context.Background(), "ON-2014-001")
	require.NoError(t, err)
	assert.Equal(t, models.ProvinceOntario, s.Province)
	assert.Nil(t, s.Journal)
	assert.Equal(t, 2016, s.PublicationYear)
}

func TestStudyRepositoryGetByStudyIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM studies WHERE study_id = $1")).
		WithArgs("missing").
		WillReturnRows(studyRows())

	_, err := repo.GetByStudyID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrStudyNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudyRepositoryDeleteNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM studies WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), apperrors.ErrStudyNotFound)
}

func TestStudyRepositoryListAppliesFiltersAndSort(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	province := models.ProvinceOntario
	from, to := 2010, 2020
	filter := models.StudyFilter{Province: &province, YearFrom: &from, YearTo: &to}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM studies WHERE province = $1 AND publication_year >= $2 AND publication_year <= $3")).
		WithArgs("ON", 2010, 2020).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE province = $1 AND publication_year >= $2 AND publication_year <= $3 ORDER BY sample_size DESC, id ASC LIMIT 20 OFFSET 0")).
		WithArgs("ON", 2010, 2020).
		WillReturnRows(addStudyRow(addStudyRow(studyRows(), 1, "ON-1", province, 2016), 2, "ON-2", province, 2012))

	sort, err := models.ParseStudySort("-sample_size")
	require.NoError(t, err)

	page, err := repo.List(context.Background(), filter, sort, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Studies, 2)
	assert.Equal(t, "ON-1", page.Studies[0].StudyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositoryListClampsPageBeyondLast(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM studies")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(25)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY publication_year DESC, id ASC LIMIT 20 OFFSET 20")).
		WillReturnRows(studyRows())

	page, err := repo.List(context.Background(), models.StudyFilter{}, models.StudySort{Field: "publication_year", Desc: true}, 9, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositorySearchEmptyQueryMatchesNothing(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	page, err := repo.Search(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Studies)
	assert.Zero(t, page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositorySearchEscapesWildcards(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	pattern := `% 50\% fluoride %`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM studies WHERE (title ILIKE $1 OR authors ILIKE $2 OR journal ILIKE $3 OR notes ILIKE $4)")).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY publication_year DESC, id ASC")).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(studyRows())

	page, err := repo.Search(context.Background(), " 50% fluoride ", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Studies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositorySearchKeepsWhitespaceQuery(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	pattern := "%   %"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM studies WHERE (title ILIKE $1 OR authors ILIKE $2 OR journal ILIKE $3 OR notes ILIKE $4)")).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY publication_year DESC, id ASC")).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(studyRows())

	_, err := repo.Search(context.Background(), "   ", 1, 20)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudyRepositoryRelatedExcludesStudy(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	s := newStudy()
	s.ID = 1
	mock.ExpectQuery(regexp.QuoteMeta("WHERE age_group = $1 AND province = $2 AND id <> $3 ORDER BY publication_year DESC, title ASC LIMIT 5")).
		WithArgs("school_age", "ON", int64(1)).
		WillReturnRows(addStudyRow(studyRows(), 2, "ON-2", models.ProvinceOntario, 2012))

	related, err := repo.Related(context.Background(), s, RelatedStudiesLimit)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, int64(2), related[0].ID)
}

func TestStudyRepositoryVerify(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE studies SET verified_by = $1, verification_date = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("B. Verifier", date, int64(1)).
		WillReturnRows(studyRows())

	_, err := repo.Verify(context.Background(), 1, "B. Verifier", date)
	assert.ErrorIs(t, err, apperrors.ErrStudyNotFound)
}

func TestStudyRepositoryWrapsDriverErrors(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM studies WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudyRepositoryFilterOptions(t *testing.T) {
	mock := newMock(t)
	repo := NewStudyRepository(mock)
	minYear, maxYear := 1998, 2016

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT province FROM studies ORDER BY province ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"province"}).AddRow("ON").AddRow("QC"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT age_group FROM studies ORDER BY age_group ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"age_group"}).AddRow("school_age"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT caries_index_used FROM studies ORDER BY caries_index_used ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"caries_index_used"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(publication_year), MAX(publication_year) FROM studies")).
		WillReturnRows(pgxmock.NewRows([]string{"min", "max"}).AddRow(&minYear, &maxYear))

	opts, err := repo.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Province{models.ProvinceOntario, models.ProvinceQuebec}, opts.Provinces)
	assert.Equal(t, []models.AgeGroup{models.AgeGroupSchoolAge}, opts.AgeGroups)
	assert.Empty(t, opts.CariesIndices)
	require.NotNil(t, opts.MinYear)
	assert.Equal(t, 1998, *opts.MinYear)
	assert.Equal(t, 2016, *opts.MaxYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
