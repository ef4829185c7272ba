package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/db"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

// RelatedStudiesLimit caps the related studies shown on a detail page.
const RelatedStudiesLimit = 5

var studyColumns = []string{
	"id", "study_id", "title", "authors", "journal", "publication_year", "doi", "pubmed_id",
	"study_design", "study_setting", "province", "city_region", "sample_size", "age_group",
	"age_min", "age_max", "data_collection_start", "data_collection_end", "caries_index_used",
	"examination_criteria", "quality_score", "risk_of_bias", "extracted_by", "extraction_date",
	"verified_by", "verification_date", "notes", "created_at", "updated_at",
}

// studyWriteColumns are set on insert; extraction_date and the timestamps
// come from column defaults.
var studyWriteColumns = []string{
	"study_id", "title", "authors", "journal", "publication_year", "doi", "pubmed_id",
	"study_design", "study_setting", "province", "city_region", "sample_size", "age_group",
	"age_min", "age_max", "data_collection_start", "data_collection_end", "caries_index_used",
	"examination_criteria", "quality_score", "risk_of_bias", "extracted_by",
	"verified_by", "verification_date", "notes",
}

// StudyRepository handles database operations for studies
type StudyRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudyRepository creates a new study repository
func NewStudyRepository(conn db.DBTX) *StudyRepository {
	return &StudyRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func studyWriteValues(s *models.Study) []interface{} {
	return []interface{}{
		s.StudyID, s.Title, s.Authors, s.Journal, s.PublicationYear, s.DOI, s.PubMedID,
		string(s.StudyDesign), string(s.StudySetting), string(s.Province), s.CityRegion, s.SampleSize,
		string(s.AgeGroup), s.AgeMin, s.AgeMax, s.DataCollectionStart, s.DataCollectionEnd,
		string(s.CariesIndexUsed), string(s.ExaminationCriteria), s.QualityScore,
		nullableString(s.RiskOfBias), s.ExtractedBy, s.VerifiedBy, s.VerificationDate, s.Notes,
	}
}

// scanStudy scans one row selected with studyColumns.
func scanStudy(row pgx.Row) (*models.Study, error) {
	var s models.Study
	err := row.Scan(
		&s.ID, &s.StudyID, &s.Title, &s.Authors, &s.Journal, &s.PublicationYear, &s.DOI, &s.PubMedID,
		&s.StudyDesign, &s.StudySetting, &s.Province, &s.CityRegion, &s.SampleSize, &s.AgeGroup,
		&s.AgeMin, &s.AgeMax, &s.DataCollectionStart, &s.DataCollectionEnd, &s.CariesIndexUsed,
		&s.ExaminationCriteria, &s.QualityScore, &s.RiskOfBias, &s.ExtractedBy, &s.ExtractionDate,
		&s.VerifiedBy, &s.VerificationDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudyNotFound
		}
		return nil, err
	}
	return &s, nil
}

func scanStudies(rows pgx.Rows) ([]models.Study, error) {
	defer rows.Close()

	studies := []models.Study{}
	for rows.Next() {
		s, err := scanStudy(rows)
		if err != nil {
			return nil, err
		}
		studies = append(studies, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return studies, nil
}

// insertStudy inserts s through conn and fills its generated fields.
func insertStudy(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, s *models.Study) error {
	sql, args, err := sb.Insert("studies").
		Columns(studyWriteColumns...).
		Values(studyWriteValues(s)...).
		Suffix("RETURNING id, extraction_date, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create study SQL")
		return fmt.Errorf("error building create study query: %w", err)
	}

	err = conn.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.ExtractionDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if vErr, ok := translateWriteError(err); ok {
			return vErr
		}
		logger.Error().Err(err).Str("study_id", s.StudyID).Msg("Error executing create study query")
		return fmt.Errorf("error creating study: %w", err)
	}
	return nil
}

// Create inserts a study.
func (r *StudyRepository) Create(ctx context.Context, s *models.Study) error {
	return insertStudy(ctx, r.db, r.sb, s)
}

// CreateWithChildren inserts a study with its data points and notes in one
// transaction. Nothing is stored if any insert fails.
func (r *StudyRepository) CreateWithChildren(ctx context.Context, s *models.Study, points []*models.CariesDataPoint, notes []*models.ExtractionNote) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertStudy(ctx, tx, r.sb, s); err != nil {
			return err
		}
		for i, p := range points {
			p.StudyID = s.ID
			if err := insertCariesData(ctx, tx, r.sb, p); err != nil {
				return prefixViolations(err, fmt.Sprintf("caries_data[%d].", i))
			}
		}
		for i, n := range notes {
			n.StudyID = s.ID
			if err := insertExtractionNote(ctx, tx, r.sb, n); err != nil {
				return prefixViolations(err, fmt.Sprintf("extraction_notes[%d].", i))
			}
		}
		return nil
	})
}

// prefixViolations qualifies the fields of a validation error raised for a
// nested record.
func prefixViolations(err error, prefix string) error {
	vErr, ok := apperrors.AsValidationError(err)
	if !ok {
		return err
	}
	out := &apperrors.ValidationError{}
	for _, v := range vErr.Violations {
		out.Add(prefix+v.Field, v.Message)
	}
	return out
}

func (r *StudyRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Study, error) {
	sql, args, err := r.sb.Select(studyColumns...).From("studies").Where(where).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get study SQL")
		return nil, fmt.Errorf("error building get study query: %w", err)
	}

	s, err := scanStudy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudyNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Msg("Error executing get study query")
		return nil, fmt.Errorf("error retrieving study: %w", err)
	}
	return s, nil
}

// GetByID retrieves a study by its primary key.
func (r *StudyRepository) GetByID(ctx context.Context, id int64) (*models.Study, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByStudyID retrieves a study by its external identifier.
func (r *StudyRepository) GetByStudyID(ctx context.Context, studyID string) (*models.Study, error) {
	return r.getOne(ctx, squirrel.Eq{"study_id": studyID})
}

// Update overwrites the editable fields of s. The extraction date and the
// verification fields are left untouched.
func (r *StudyRepository) Update(ctx context.Context, s *models.Study) error {
	sql, args, err := r.sb.Update("studies").
		SetMap(map[string]interface{}{
			"study_id":              s.StudyID,
			"title":                 s.Title,
			"authors":               s.Authors,
			"journal":               s.Journal,
			"publication_year":      s.PublicationYear,
			"doi":                   s.DOI,
			"pubmed_id":             s.PubMedID,
			"study_design":          string(s.StudyDesign),
			"study_setting":         string(s.StudySetting),
			"province":              string(s.Province),
			"city_region":           s.CityRegion,
			"sample_size":           s.SampleSize,
			"age_group":             string(s.AgeGroup),
			"age_min":               s.AgeMin,
			"age_max":               s.AgeMax,
			"data_collection_start": s.DataCollectionStart,
			"data_collection_end":   s.DataCollectionEnd,
			"caries_index_used":     string(s.CariesIndexUsed),
			"examination_criteria":  string(s.ExaminationCriteria),
			"quality_score":         s.QualityScore,
			"risk_of_bias":          nullableString(s.RiskOfBias),
			"extracted_by":          s.ExtractedBy,
			"notes":                 s.Notes,
			"updated_at":            squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING " + strings.Join(studyColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update study SQL")
		return fmt.Errorf("error building update study query: %w", err)
	}

	updated, err := scanStudy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudyNotFound) {
			return err
		}
		if vErr, ok := translateWriteError(err); ok {
			return vErr
		}
		logger.Error().Err(err).Int64("id", s.ID).Msg("Error executing update study query")
		return fmt.Errorf("error updating study: %w", err)
	}
	*s = *updated
	return nil
}

// Verify records the verifier's sign-off and returns the updated study.
func (r *StudyRepository) Verify(ctx context.Context, id int64, verifiedBy string, date time.Time) (*models.Study, error) {
	sql, args, err := r.sb.Update("studies").
		Set("verified_by", verifiedBy).
		Set("verification_date", date).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(studyColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building verify study SQL")
		return nil, fmt.Errorf("error building verify study query: %w", err)
	}

	s, err := scanStudy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudyNotFound) {
			return nil, err
		}
		if vErr, ok := translateWriteError(err); ok {
			return nil, vErr
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing verify study query")
		return nil, fmt.Errorf("error verifying study: %w", err)
	}
	return s, nil
}

// Delete removes a study. Its data points and notes are removed by the
// cascading foreign keys.
func (r *StudyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("studies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete study SQL")
		return fmt.Errorf("error building delete study query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete study query")
		return fmt.Errorf("error deleting study: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudyNotFound
	}
	return nil
}

func applyStudyFilter(q squirrel.SelectBuilder, f models.StudyFilter) squirrel.SelectBuilder {
	if f.Province != nil {
		q = q.Where(squirrel.Eq{"province": string(*f.Province)})
	}
	if f.AgeGroup != nil {
		q = q.Where(squirrel.Eq{"age_group": string(*f.AgeGroup)})
	}
	if f.CariesIndex != nil {
		q = q.Where(squirrel.Eq{"caries_index_used": string(*f.CariesIndex)})
	}
	if f.YearFrom != nil {
		q = q.Where(squirrel.GtOrEq{"publication_year": *f.YearFrom})
	}
	if f.YearTo != nil {
		q = q.Where(squirrel.LtOrEq{"publication_year": *f.YearTo})
	}
	return q
}

func orderClause(sort models.StudySort) string {
	if sort.Desc {
		return sort.Field + " DESC"
	}
	return sort.Field + " ASC"
}

// page counts the rows matched by where, clamps the requested page and
// fetches it in the given order.
func (r *StudyRepository) page(ctx context.Context, filter func(squirrel.SelectBuilder) squirrel.SelectBuilder, orderBy []string, page, size int) (*models.StudyPage, error) {
	size = helpers.NormalizePageSize(size)

	countSQL, countArgs, err := filter(r.sb.Select("COUNT(*)").From("studies")).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count studies SQL")
		return nil, fmt.Errorf("error building count studies query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count studies query")
		return nil, fmt.Errorf("error counting studies: %w", err)
	}

	page = helpers.ClampPage(page, size, total)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sql, args, err := filter(r.sb.Select(studyColumns...).From("studies")).
		OrderBy(orderBy...).
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list studies SQL")
		return nil, fmt.Errorf("error building list studies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list studies query")
		return nil, fmt.Errorf("error listing studies: %w", err)
	}
	studies, err := scanStudies(rows)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning studies")
		return nil, fmt.Errorf("error scanning studies: %w", err)
	}

	return &models.StudyPage{Studies: studies, Total: total, Page: page, Size: size}, nil
}

// List returns one page of studies matching filter in the given order. Ties
// are broken by id so pages are stable.
func (r *StudyRepository) List(ctx context.Context, filter models.StudyFilter, sort models.StudySort, page, size int) (*models.StudyPage, error) {
	return r.page(ctx, func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		return applyStudyFilter(q, filter)
	}, []string{orderClause(sort), "id ASC"}, page, size)
}

// escapeLike escapes the LIKE metacharacters of s.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Search returns studies whose title, authors, journal or notes contain
// query, ignoring case. The query is matched as given, surrounding spaces
// included. An empty query matches nothing.
func (r *StudyRepository) Search(ctx context.Context, query string, page, size int) (*models.StudyPage, error) {
	if query == "" {
		return &models.StudyPage{Studies: []models.Study{}, Page: 1, Size: helpers.NormalizePageSize(size)}, nil
	}

	pattern := "%" + escapeLike(query) + "%"
	match := squirrel.Or{
		squirrel.ILike{"title": pattern},
		squirrel.ILike{"authors": pattern},
		squirrel.ILike{"journal": pattern},
		squirrel.ILike{"notes": pattern},
	}
	return r.page(ctx, func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		return q.Where(match)
	}, []string{"publication_year DESC", "id ASC"}, page, size)
}

func (r *StudyRepository) listWhere(ctx context.Context, q squirrel.SelectBuilder, what string) ([]models.Study, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}
	studies, err := scanStudies(rows)
	if err != nil {
		logger.Error().Err(err).Msgf("Error scanning %s", what)
		return nil, fmt.Errorf("error scanning %s: %w", what, err)
	}
	return studies, nil
}

// Related returns up to limit other studies sharing s's province and age
// group, in the default study ordering.
func (r *StudyRepository) Related(ctx context.Context, s *models.Study, limit uint64) ([]models.Study, error) {
	q := r.sb.Select(studyColumns...).From("studies").
		Where(squirrel.Eq{"province": string(s.Province), "age_group": string(s.AgeGroup)}).
		Where(squirrel.NotEq{"id": s.ID}).
		OrderBy("publication_year DESC", "title ASC").
		Limit(limit)
	return r.listWhere(ctx, q, "related studies")
}

// Recent returns the most recently published studies.
func (r *StudyRepository) Recent(ctx context.Context, limit uint64) ([]models.Study, error) {
	q := r.sb.Select(studyColumns...).From("studies").
		OrderBy("publication_year DESC", "created_at DESC").
		Limit(limit)
	return r.listWhere(ctx, q, "recent studies")
}

func distinctValues[T ~string](ctx context.Context, r *StudyRepository, column string) ([]T, error) {
	sql, args, err := r.sb.Select(column).Distinct().From("studies").OrderBy(column + " ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building distinct %s query: %w", column, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []T{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning distinct %s: %w", column, err)
		}
		values = append(values, T(v))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning distinct %s: %w", column, err)
	}
	return values, nil
}

// FilterOptions lists the provinces, age groups and caries indices present in
// the catalog with its publication year range.
func (r *StudyRepository) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var (
		opts models.FilterOptions
		err  error
	)
	if opts.Provinces, err = distinctValues[models.Province](ctx, r, "province"); err != nil {
		logger.Error().Err(err).Msg("Error loading province filter options")
		return nil, err
	}
	if opts.AgeGroups, err = distinctValues[models.AgeGroup](ctx, r, "age_group"); err != nil {
		logger.Error().Err(err).Msg("Error loading age group filter options")
		return nil, err
	}
	if opts.CariesIndices, err = distinctValues[models.CariesIndex](ctx, r, "caries_index_used"); err != nil {
		logger.Error().Err(err).Msg("Error loading caries index filter options")
		return nil, err
	}

	sql, args, err := r.sb.Select("MIN(publication_year)", "MAX(publication_year)").From("studies").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building year range query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&opts.MinYear, &opts.MaxYear); err != nil {
		logger.Error().Err(err).Msg("Error loading publication year range")
		return nil, fmt.Errorf("error retrieving year range: %w", err)
	}
	return &opts, nil
}
