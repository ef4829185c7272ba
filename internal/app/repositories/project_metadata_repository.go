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

var projectMetadataColumns = []string{
	"id", "project_name", "protocol_version", "last_updated", "search_start_date", "search_end_date",
	"databases_searched", "inclusion_criteria", "exclusion_criteria", "analysis_software",
	"bayesian_model_version",
}

// ProjectMetadataRepository handles database operations for project metadata
type ProjectMetadataRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProjectMetadataRepository creates a new project metadata repository
func NewProjectMetadataRepository(conn db.DBTX) *ProjectMetadataRepository {
	return &ProjectMetadataRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func scanProjectMetadata(row pgx.Row) (*models.ProjectMetadata, error) {
	var m models.ProjectMetadata
	err := row.Scan(
		&m.ID, &m.ProjectName, &m.ProtocolVersion, &m.LastUpdated, &m.SearchStartDate, &m.SearchEndDate,
		&m.DatabasesSearched, &m.InclusionCriteria, &m.ExclusionCriteria, &m.AnalysisSoftware,
		&m.BayesianModelVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectMetadataNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ProjectMetadataRepository) queryOne(ctx context.Context, q squirrel.Sqlizer, what string) (*models.ProjectMetadata, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}

	m, err := scanProjectMetadata(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectMetadataNotFound) {
			return nil, err
		}
		if vErr, ok := translateWriteError(err); ok {
			return nil, vErr
		}
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return m, nil
}

// Create inserts project metadata.
func (r *ProjectMetadataRepository) Create(ctx context.Context, m *models.ProjectMetadata) error {
	q := r.sb.Insert("project_metadata").
		Columns(
			"project_name", "protocol_version", "search_start_date", "search_end_date",
			"databases_searched", "inclusion_criteria", "exclusion_criteria", "analysis_software",
			"bayesian_model_version",
		).
		Values(
			m.ProjectName, m.ProtocolVersion, m.SearchStartDate, m.SearchEndDate,
			m.DatabasesSearched, m.InclusionCriteria, m.ExclusionCriteria, m.AnalysisSoftware,
			m.BayesianModelVersion,
		).
		Suffix("RETURNING " + strings.Join(projectMetadataColumns, ", "))

	created, err := r.queryOne(ctx, q, "create project metadata")
	if err != nil {
		return err
	}
	*m = *created
	return nil
}

// GetByID retrieves project metadata by ID
func (r *ProjectMetadataRepository) GetByID(ctx context.Context, id int64) (*models.ProjectMetadata, error) {
	q := r.sb.Select(projectMetadataColumns...).From("project_metadata").Where(squirrel.Eq{"id": id})
	return r.queryOne(ctx, q, "get project metadata")
}

// First returns the record with the lowest id, which the public pages show.
func (r *ProjectMetadataRepository) First(ctx context.Context) (*models.ProjectMetadata, error) {
	q := r.sb.Select(projectMetadataColumns...).From("project_metadata").OrderBy("id ASC").Limit(1)
	return r.queryOne(ctx, q, "first project metadata")
}

// List returns every record ordered by id.
func (r *ProjectMetadataRepository) List(ctx context.Context) ([]models.ProjectMetadata, error) {
	sql, args, err := r.sb.Select(projectMetadataColumns...).From("project_metadata").OrderBy("id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list project metadata SQL")
		return nil, fmt.Errorf("error building list project metadata query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list project metadata query")
		return nil, fmt.Errorf("error listing project metadata: %w", err)
	}
	defer rows.Close()

	records := []models.ProjectMetadata{}
	for rows.Next() {
		m, err := scanProjectMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project metadata: %w", err)
		}
		records = append(records, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning project metadata: %w", err)
	}
	return records, nil
}

// Update overwrites a record and stamps last_updated.
func (r *ProjectMetadataRepository) Update(ctx context.Context, m *models.ProjectMetadata) error {
	q := r.sb.Update("project_metadata").
		SetMap(map[string]interface{}{
			"project_name":           m.ProjectName,
			"protocol_version":       m.ProtocolVersion,
			"search_start_date":      m.SearchStartDate,
			"search_end_date":        m.SearchEndDate,
			"databases_searched":     m.DatabasesSearched,
			"inclusion_criteria":     m.InclusionCriteria,
			"exclusion_criteria":     m.ExclusionCriteria,
			"analysis_software":      m.AnalysisSoftware,
			"bayesian_model_version": m.BayesianModelVersion,
			"last_updated":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING " + strings.Join(projectMetadataColumns, ", "))

	updated, err := r.queryOne(ctx, q, "update project metadata")
	if err != nil {
		return err
	}
	*m = *updated
	return nil
}

// Delete removes a record.
func (r *ProjectMetadataRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("project_metadata").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete project metadata SQL")
		return fmt.Errorf("error building delete project metadata query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete project metadata query")
		return fmt.Errorf("error deleting project metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectMetadataNotFound
	}
	return nil
}
