package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/db"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

// decadeExpr buckets a study by the decade its data collection started.
const decadeExpr = "(FLOOR(EXTRACT(YEAR FROM s.data_collection_start) / 10) * 10)::int"

// publicationYearTrendsSQL averages sample sizes over studies before joining
// the data point averages so studies with many strata are not over-weighted.
const publicationYearTrendsSQL = `
WITH per_year AS (
	SELECT publication_year, COUNT(*) AS study_count, AVG(sample_size)::float8 AS avg_sample_size
	FROM studies
	GROUP BY publication_year
), dmft AS (
	SELECT s.publication_year, AVG(cd.mean_dmft)::float8 AS avg_dmft
	FROM caries_data cd
	JOIN studies s ON s.id = cd.study_id
	GROUP BY s.publication_year
)
SELECT per_year.publication_year, per_year.study_count, per_year.avg_sample_size, dmft.avg_dmft
FROM per_year
LEFT JOIN dmft ON dmft.publication_year = per_year.publication_year
ORDER BY per_year.publication_year ASC`

// AggregateRepository runs the read-only group-by queries behind the home
// page, the dashboard and the chart API.
type AggregateRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewAggregateRepository creates a new aggregate repository
func NewAggregateRepository(conn db.DBTX) *AggregateRepository {
	return &AggregateRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// collect runs q and scans every row with scan.
func collect[T any](ctx context.Context, r *AggregateRepository, q squirrel.Sqlizer, what string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}
	return collectSQL(ctx, r, sql, args, what, scan)
}

func collectSQL[T any](ctx context.Context, r *AggregateRepository, sql string, args []interface{}, what string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Msgf("Error scanning %s", what)
			return nil, fmt.Errorf("error scanning %s: %w", what, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msgf("Error iterating %s", what)
		return nil, fmt.Errorf("error scanning %s: %w", what, err)
	}
	return items, nil
}

func (r *AggregateRepository) queryRow(ctx context.Context, q squirrel.Sqlizer, what string, dest ...interface{}) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return fmt.Errorf("error building %s query: %w", what, err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return fmt.Errorf("error retrieving %s: %w", what, err)
	}
	return nil
}

// Overview counts studies and participants and reports the publication year
// range. The years are nil for an empty catalog.
func (r *AggregateRepository) Overview(ctx context.Context) (*models.Overview, error) {
	q := r.sb.Select(
		"COUNT(*)",
		"COALESCE(SUM(sample_size), 0)::bigint",
		"MAX(publication_year)",
		"MIN(publication_year)",
	).From("studies")

	var o models.Overview
	if err := r.queryRow(ctx, q, "overview", &o.TotalStudies, &o.TotalParticipants, &o.LatestYear, &o.EarliestYear); err != nil {
		return nil, err
	}
	return &o, nil
}

// ProvinceCoverage returns the provinces with the most studies.
func (r *AggregateRepository) ProvinceCoverage(ctx context.Context, limit uint64) ([]models.ProvinceCoverage, error) {
	q := r.sb.Select("province", "COUNT(*) AS study_count", "COALESCE(SUM(sample_size), 0)::bigint AS total_participants").
		From("studies").
		GroupBy("province").
		OrderBy("study_count DESC", "province ASC").
		Limit(limit)

	return collect(ctx, r, q, "province coverage", func(rows pgx.Rows) (models.ProvinceCoverage, error) {
		var c models.ProvinceCoverage
		err := rows.Scan(&c.Province, &c.StudyCount, &c.TotalParticipants)
		return c, err
	})
}

func (r *AggregateRepository) categoryCounts(ctx context.Context, column, what string, label func(string) string) ([]models.CategoryCount, error) {
	q := r.sb.Select(column, "COUNT(*) AS study_count").
		From("studies").
		GroupBy(column).
		OrderBy("study_count DESC", column+" ASC")

	return collect(ctx, r, q, what, func(rows pgx.Rows) (models.CategoryCount, error) {
		var c models.CategoryCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return c, err
		}
		c.Label = label(c.Value)
		return c, nil
	})
}

// AgeGroupDistribution counts studies per age group, most common first.
func (r *AggregateRepository) AgeGroupDistribution(ctx context.Context) ([]models.CategoryCount, error) {
	return r.categoryCounts(ctx, "age_group", "age group distribution", func(v string) string {
		return models.AgeGroup(v).Label()
	})
}

// CariesIndexUsage counts studies per caries index, most common first.
func (r *AggregateRepository) CariesIndexUsage(ctx context.Context) ([]models.CategoryCount, error) {
	return r.categoryCounts(ctx, "caries_index_used", "caries index usage", func(v string) string {
		return models.CariesIndex(v).Label()
	})
}

// QuickFacts reports the provinces covered, the publication year span and
// the mean sample size. All are zero for an empty catalog.
func (r *AggregateRepository) QuickFacts(ctx context.Context) (*models.QuickFacts, error) {
	q := r.sb.Select(
		"COUNT(DISTINCT province)",
		"COALESCE(MAX(publication_year) - MIN(publication_year), 0)",
		"COALESCE(AVG(sample_size), 0)::float8",
	).From("studies")

	var f models.QuickFacts
	if err := r.queryRow(ctx, q, "quick facts", &f.ProvincesCovered, &f.YearsSpan, &f.AverageSampleSize); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *AggregateRepository) dataPointsByStudy() squirrel.SelectBuilder {
	return r.sb.Select().From("caries_data cd").Join("studies s ON s.id = cd.study_id")
}

// CariesByProvince averages data points by their study's province, highest
// prevalence first. study_count counts distinct studies.
func (r *AggregateRepository) CariesByProvince(ctx context.Context) ([]models.ProvinceCaries, error) {
	q := r.dataPointsByStudy().
		Columns(
			"s.province",
			"AVG(cd.caries_prevalence)::float8 AS avg_prevalence",
			"AVG(cd.mean_dmft)::float8 AS avg_dmft",
			"COUNT(DISTINCT s.id) AS study_count",
			"COALESCE(SUM(cd.sample_size_group), 0)::bigint AS total_participants",
		).
		GroupBy("s.province").
		OrderBy("avg_prevalence DESC", "s.province ASC")

	return collect(ctx, r, q, "caries by province", func(rows pgx.Rows) (models.ProvinceCaries, error) {
		var p models.ProvinceCaries
		err := rows.Scan(&p.Province, &p.AvgPrevalence, &p.AvgDMFT, &p.StudyCount, &p.TotalParticipants)
		return p, err
	})
}

// CariesByAge averages data points by age category label. count is the
// number of data points.
func (r *AggregateRepository) CariesByAge(ctx context.Context) ([]models.AgeCategoryCaries, error) {
	q := r.sb.Select(
		"age_category",
		"AVG(caries_prevalence)::float8 AS avg_prevalence",
		"AVG(mean_dmft)::float8 AS avg_dmft",
		"COUNT(*) AS count",
	).
		From("caries_data").
		GroupBy("age_category").
		OrderBy("age_category ASC")

	return collect(ctx, r, q, "caries by age", func(rows pgx.Rows) (models.AgeCategoryCaries, error) {
		var a models.AgeCategoryCaries
		err := rows.Scan(&a.AgeCategory, &a.AvgPrevalence, &a.AvgDMFT, &a.Count)
		return a, err
	})
}

// TemporalTrends averages data points by the decade their study started
// collecting data, oldest first.
func (r *AggregateRepository) TemporalTrends(ctx context.Context) ([]models.DecadeTrend, error) {
	q := r.dataPointsByStudy().
		Columns(
			decadeExpr+" AS decade",
			"AVG(cd.caries_prevalence)::float8 AS avg_prevalence",
			"AVG(cd.mean_dmft)::float8 AS avg_dmft",
			"COUNT(DISTINCT s.id) AS study_count",
		).
		GroupBy("decade").
		OrderBy("decade ASC")

	return collect(ctx, r, q, "temporal trends", func(rows pgx.Rows) (models.DecadeTrend, error) {
		var d models.DecadeTrend
		err := rows.Scan(&d.Decade, &d.AvgPrevalence, &d.AvgDMFT, &d.StudyCount)
		return d, err
	})
}

// DashboardProvinces counts studies per province with the mean DMFT of their
// data points, most studied first.
func (r *AggregateRepository) DashboardProvinces(ctx context.Context) ([]models.ProvinceSummary, error) {
	q := r.sb.Select(
		"s.province",
		"COUNT(DISTINCT s.id) AS study_count",
		"AVG(cd.mean_dmft)::float8 AS avg_dmft",
	).
		From("studies s").
		LeftJoin("caries_data cd ON cd.study_id = s.id").
		GroupBy("s.province").
		OrderBy("study_count DESC", "s.province ASC")

	return collect(ctx, r, q, "dashboard provinces", func(rows pgx.Rows) (models.ProvinceSummary, error) {
		var p models.ProvinceSummary
		err := rows.Scan(&p.Province, &p.StudyCount, &p.AvgDMFT)
		return p, err
	})
}

// DashboardAgeGroups averages data points by their study's age group.
func (r *AggregateRepository) DashboardAgeGroups(ctx context.Context) ([]models.AgeGroupCaries, error) {
	q := r.dataPointsByStudy().
		Columns(
			"s.age_group",
			"AVG(cd.caries_prevalence)::float8 AS avg_prevalence",
			"AVG(cd.mean_dmft)::float8 AS avg_dmft",
			"COUNT(DISTINCT s.id) AS study_count",
		).
		GroupBy("s.age_group").
		OrderBy("s.age_group ASC")

	return collect(ctx, r, q, "dashboard age groups", func(rows pgx.Rows) (models.AgeGroupCaries, error) {
		var a models.AgeGroupCaries
		err := rows.Scan(&a.AgeGroup, &a.AvgPrevalence, &a.AvgDMFT, &a.StudyCount)
		return a, err
	})
}

// PublicationYearTrends summarizes studies per publication year, oldest
// first.
func (r *AggregateRepository) PublicationYearTrends(ctx context.Context) ([]models.YearTrend, error) {
	return collectSQL(ctx, r, publicationYearTrendsSQL, nil, "publication year trends", func(rows pgx.Rows) (models.YearTrend, error) {
		var y models.YearTrend
		err := rows.Scan(&y.PublicationYear, &y.StudyCount, &y.AvgSampleSize, &y.AvgDMFT)
		return y, err
	})
}
