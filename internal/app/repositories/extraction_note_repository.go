package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/db"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

var extractionNoteColumns = []string{"id", "study_id", "note_type", "note_text", "created_by", "created_at"}

// ExtractionNoteRepository handles database operations for extraction notes.
// Notes are never updated.
type ExtractionNoteRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewExtractionNoteRepository creates a new extraction note repository
func NewExtractionNoteRepository(conn db.DBTX) *ExtractionNoteRepository {
	return &ExtractionNoteRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func scanExtractionNote(row pgx.Row) (*models.ExtractionNote, error) {
	var n models.ExtractionNote
	if err := row.Scan(&n.ID, &n.StudyID, &n.NoteType, &n.NoteText, &n.CreatedBy, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExtractionNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

func insertExtractionNote(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, n *models.ExtractionNote) error {
	sql, args, err := sb.Insert("extraction_notes").
		Columns("study_id", "note_type", "note_text", "created_by").
		Values(n.StudyID, string(n.NoteType), n.NoteText, n.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create extraction note SQL")
		return fmt.Errorf("error building create extraction note query: %w", err)
	}

	if err := conn.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt); err != nil {
		if vErr, ok := translateWriteError(err); ok {
			return vErr
		}
		logger.Error().Err(err).Int64("study", n.StudyID).Msg("Error executing create extraction note query")
		return fmt.Errorf("error creating extraction note: %w", err)
	}
	return nil
}

// Create appends a note.
func (r *ExtractionNoteRepository) Create(ctx context.Context, n *models.ExtractionNote) error {
	return insertExtractionNote(ctx, r.db, r.sb, n)
}

// GetByID retrieves a note by ID
func (r *ExtractionNoteRepository) GetByID(ctx context.Context, id int64) (*models.ExtractionNote, error) {
	sql, args, err := r.sb.Select(extractionNoteColumns...).From("extraction_notes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get extraction note SQL")
		return nil, fmt.Errorf("error building get extraction note query: %w", err)
	}

	n, err := scanExtractionNote(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrExtractionNoteNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing get extraction note query")
		return nil, fmt.Errorf("error retrieving extraction note: %w", err)
	}
	return n, nil
}

// ListByStudy returns a study's notes, newest first.
func (r *ExtractionNoteRepository) ListByStudy(ctx context.Context, studyID int64) ([]models.ExtractionNote, error) {
	sql, args, err := r.sb.Select(extractionNoteColumns...).
		From("extraction_notes").
		Where(squirrel.Eq{"study_id": studyID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list extraction notes SQL")
		return nil, fmt.Errorf("error building list extraction notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("study", studyID).Msg("Error executing list extraction notes query")
		return nil, fmt.Errorf("error listing extraction notes: %w", err)
	}
	defer rows.Close()

	notes := []models.ExtractionNote{}
	for rows.Next() {
		n, err := scanExtractionNote(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning extraction notes: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning extraction notes: %w", err)
	}
	return notes, nil
}

// Delete removes a note.
func (r *ExtractionNoteRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("extraction_notes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete extraction note SQL")
		return fmt.Errorf("error building delete extraction note query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete extraction note query")
		return fmt.Errorf("error deleting extraction note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExtractionNoteNotFound
	}
	return nil
}
