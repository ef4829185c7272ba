package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/db"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

var cariesDataColumns = []string{
	"id", "study_id", "sex", "age_category", "socioeconomic_status", "sample_size_group",
	"caries_prevalence", "caries_prevalence_ci_lower", "caries_prevalence_ci_upper",
	"mean_dmft", "mean_dmft_sd", "mean_decayed", "mean_missing", "mean_filled", "care_index",
	"created_at", "updated_at",
}

// CariesDataRepository handles database operations for caries data points
type CariesDataRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCariesDataRepository creates a new caries data repository
func NewCariesDataRepository(conn db.DBTX) *CariesDataRepository {
	return &CariesDataRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func scanCariesData(row pgx.Row) (*models.CariesDataPoint, error) {
	var p models.CariesDataPoint
	err := row.Scan(
		&p.ID, &p.StudyID, &p.Sex, &p.AgeCategory, &p.SocioeconomicStatus, &p.SampleSizeGroup,
		&p.CariesPrevalence, &p.CariesPrevalenceCILower, &p.CariesPrevalenceCIUpper,
		&p.MeanDMFT, &p.MeanDMFTSD, &p.MeanDecayed, &p.MeanMissing, &p.MeanFilled, &p.CareIndex,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCariesDataNotFound
		}
		return nil, err
	}
	return &p, nil
}

// insertCariesData inserts p through conn and fills its generated fields.
func insertCariesData(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, p *models.CariesDataPoint) error {
	sql, args, err := sb.Insert("caries_data").
		Columns(
			"study_id", "sex", "age_category", "socioeconomic_status", "sample_size_group",
			"caries_prevalence", "caries_prevalence_ci_lower", "caries_prevalence_ci_upper",
			"mean_dmft", "mean_dmft_sd", "mean_decayed", "mean_missing", "mean_filled", "care_index",
		).
		Values(
			p.StudyID, string(p.Sex), p.AgeCategory, nullableString(p.SocioeconomicStatus), p.SampleSizeGroup,
			p.CariesPrevalence, p.CariesPrevalenceCILower, p.CariesPrevalenceCIUpper,
			p.MeanDMFT, p.MeanDMFTSD, p.MeanDecayed, p.MeanMissing, p.MeanFilled, p.CareIndex,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create caries data SQL")
		return fmt.Errorf("error building create caries data query: %w", err)
	}

	if err := conn.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if vErr, ok := translateWriteError(err); ok {
			return vErr
		}
		logger.Error().Err(err).Int64("study", p.StudyID).Msg("Error executing create caries data query")
		return fmt.Errorf("error creating caries data: %w", err)
	}
	return nil
}

// Create inserts a data point.
func (r *CariesDataRepository) Create(ctx context.Context, p *models.CariesDataPoint) error {
	return insertCariesData(ctx, r.db, r.sb, p)
}

// GetByID retrieves a data point by ID
func (r *CariesDataRepository) GetByID(ctx context.Context, id int64) (*models.CariesDataPoint, error) {
	sql, args, err := r.sb.Select(cariesDataColumns...).From("caries_data").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get caries data SQL")
		return nil, fmt.Errorf("error building get caries data query: %w", err)
	}

	p, err := scanCariesData(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrCariesDataNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing get caries data query")
		return nil, fmt.Errorf("error retrieving caries data: %w", err)
	}
	return p, nil
}

// ListByStudy returns a study's data points ordered by age category and sex.
func (r *CariesDataRepository) ListByStudy(ctx context.Context, studyID int64) ([]models.CariesDataPoint, error) {
	sql, args, err := r.sb.Select(cariesDataColumns...).
		From("caries_data").
		Where(squirrel.Eq{"study_id": studyID}).
		OrderBy("age_category ASC", "sex ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list caries data SQL")
		return nil, fmt.Errorf("error building list caries data query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("study", studyID).Msg("Error executing list caries data query")
		return nil, fmt.Errorf("error listing caries data: %w", err)
	}
	defer rows.Close()

	points := []models.CariesDataPoint{}
	for rows.Next() {
		p, err := scanCariesData(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning caries data")
			return nil, fmt.Errorf("error scanning caries data: %w", err)
		}
		points = append(points, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning caries data: %w", err)
	}
	return points, nil
}

// Update overwrites a data point. Its owning study cannot change.
func (r *CariesDataRepository) Update(ctx context.Context, p *models.CariesDataPoint) error {
	sql, args, err := r.sb.Update("caries_data").
		SetMap(map[string]interface{}{
			"sex":                        string(p.Sex),
			"age_category":               p.AgeCategory,
			"socioeconomic_status":       nullableString(p.SocioeconomicStatus),
			"sample_size_group":          p.SampleSizeGroup,
			"caries_prevalence":          p.CariesPrevalence,
			"caries_prevalence_ci_lower": p.CariesPrevalenceCILower,
			"caries_prevalence_ci_upper": p.CariesPrevalenceCIUpper,
			"mean_dmft":                  p.MeanDMFT,
			"mean_dmft_sd":               p.MeanDMFTSD,
			"mean_decayed":               p.MeanDecayed,
			"mean_missing":               p.MeanMissing,
			"mean_filled":                p.MeanFilled,
			"care_index":                 p.CareIndex,
			"updated_at":                 squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(cariesDataColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update caries data SQL")
		return fmt.Errorf("error building update caries data query: %w", err)
	}

	updated, err := scanCariesData(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrCariesDataNotFound) {
			return err
		}
		if vErr, ok := translateWriteError(err); ok {
			return vErr
		}
		logger.Error().Err(err).Int64("id", p.ID).Msg("Error executing update caries data query")
		return fmt.Errorf("error updating caries data: %w", err)
	}
	*p = *updated
	return nil
}

// Delete removes a data point.
func (r *CariesDataRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("caries_data").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete caries data SQL")
		return fmt.Errorf("error building delete caries data query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete caries data query")
		return fmt.Errorf("error deleting caries data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCariesDataNotFound
	}
	return nil
}
