package services

import (
	"context"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// ExtractionNoteService handles extraction notes. Notes cannot be edited.
type ExtractionNoteService interface {
	ListForStudy(ctx context.Context, studyID string) ([]models.ExtractionNote, error)
	Create(ctx context.Context, editor models.Editor, studyID string, req *dto.ExtractionNoteRequest) (*models.ExtractionNote, error)
	Get(ctx context.Context, id int64) (*models.ExtractionNote, error)
	Delete(ctx context.Context, id int64) error
}

type extractionNoteServiceImpl struct {
	notes   ExtractionNoteStore
	studies StudyStore
}

// NewExtractionNoteService creates a new ExtractionNoteService
func NewExtractionNoteService(notes ExtractionNoteStore, studies StudyStore) ExtractionNoteService {
	return &extractionNoteServiceImpl{notes: notes, studies: studies}
}

func (s *extractionNoteServiceImpl) ListForStudy(ctx context.Context, studyID string) ([]models.ExtractionNote, error) {
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	return s.notes.ListByStudy(ctx, study.ID)
}

// Create appends a note to a study. The author defaults to the editor.
func (s *extractionNoteServiceImpl) Create(ctx context.Context, editor models.Editor, studyID string, req *dto.ExtractionNoteRequest) (*models.ExtractionNote, error) {
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}

	n := req.ToModel(study.ID)
	if n.CreatedBy == "" {
		n.CreatedBy = editor.DisplayName()
	}
	if err := validation.Struct(n); err != nil {
		return nil, err
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *extractionNoteServiceImpl) Get(ctx context.Context, id int64) (*models.ExtractionNote, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *extractionNoteServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.notes.Delete(ctx, id)
}
