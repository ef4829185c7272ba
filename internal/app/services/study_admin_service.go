package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cariesreview/catalog/internal/app/auth"
	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
	"github.com/cariesreview/catalog/internal/pkg/logger"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// StudyAdminService handles study writes from the editing API.
type StudyAdminService interface {
	CreateStudy(ctx context.Context, editor models.Editor, req *dto.StudyRequest) (*models.Study, error)
	GetStudy(ctx context.Context, studyID string) (*models.Study, error)
	UpdateStudy(ctx context.Context, editor models.Editor, studyID string, req *dto.StudyRequest) (*models.Study, error)
	DeleteStudy(ctx context.Context, studyID string) error
	VerifyStudy(ctx context.Context, editor models.Editor, studyID string) (*models.Study, error)
}

type studyAdminServiceImpl struct {
	studies StudyStore
	today   func() time.Time
}

// NewStudyAdminService creates a new StudyAdminService
func NewStudyAdminService(studies StudyStore) StudyAdminService {
	return &studyAdminServiceImpl{studies: studies, today: helpers.Today}
}

// CreateStudy validates and stores a study with any inline data points and
// notes in a single transaction.
func (s *studyAdminServiceImpl) CreateStudy(ctx context.Context, editor models.Editor, req *dto.StudyRequest) (*models.Study, error) {
	study, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if study.ExtractedBy == "" {
		study.ExtractedBy = editor.DisplayName()
	}

	vErr := &apperrors.ValidationError{}
	collectViolations(vErr, "", validation.Struct(study))

	points := make([]*models.CariesDataPoint, 0, len(req.CariesData))
	seen := map[models.StratumKey]bool{}
	for i := range req.CariesData {
		prefix := fmt.Sprintf("caries_data[%d].", i)
		p, err := req.CariesData[i].ToModel(0)
		if err != nil {
			collectViolations(vErr, prefix, err)
			continue
		}
		collectViolations(vErr, prefix, validation.Struct(p))
		if seen[p.Stratum()] {
			vErr.Add(prefix+"age_category", "duplicates another data point's sex, age category and socioeconomic status")
		}
		seen[p.Stratum()] = true
		points = append(points, p)
	}

	notes := make([]*models.ExtractionNote, 0, len(req.ExtractionNotes))
	for i := range req.ExtractionNotes {
		n := req.ExtractionNotes[i].ToModel(0)
		if n.CreatedBy == "" {
			n.CreatedBy = editor.DisplayName()
		}
		collectViolations(vErr, fmt.Sprintf("extraction_notes[%d].", i), validation.Struct(n))
		notes = append(notes, n)
	}

	if vErr.HasViolations() {
		return nil, vErr
	}

	if err := s.studies.CreateWithChildren(ctx, study, points, notes); err != nil {
		return nil, err
	}
	logger.Info().
		Str("study_id", study.StudyID).
		Str("editor", editor.Username).
		Int("caries_data", len(points)).
		Int("extraction_notes", len(notes)).
		Msg("Study created")
	return study, nil
}

// GetStudy loads a study by its external identifier.
func (s *studyAdminServiceImpl) GetStudy(ctx context.Context, studyID string) (*models.Study, error) {
	return s.studies.GetByStudyID(ctx, studyID)
}

// UpdateStudy overwrites a study's editable fields. Inline data points and
// notes in the request are ignored; they have their own endpoints.
func (s *studyAdminServiceImpl) UpdateStudy(ctx context.Context, editor models.Editor, studyID string, req *dto.StudyRequest) (*models.Study, error) {
	existing, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}

	study, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	study.ID = existing.ID
	if study.ExtractedBy == "" {
		study.ExtractedBy = existing.ExtractedBy
	}
	if err := validation.Struct(study); err != nil {
		return nil, err
	}

	if err := s.studies.Update(ctx, study); err != nil {
		return nil, err
	}
	logger.Info().Str("study_id", study.StudyID).Str("editor", editor.Username).Msg("Study updated")
	return study, nil
}

// DeleteStudy removes a study with its data points and notes.
func (s *studyAdminServiceImpl) DeleteStudy(ctx context.Context, studyID string) error {
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return err
	}
	return s.studies.Delete(ctx, study.ID)
}

// VerifyStudy records the editor as the study's verifier with today's date.
// Only verifiers may do this.
func (s *studyAdminServiceImpl) VerifyStudy(ctx context.Context, editor models.Editor, studyID string) (*models.Study, error) {
	if err := auth.Authorize(editor, auth.PermVerifyStudies); err != nil {
		return nil, err
	}
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	return s.studies.Verify(ctx, study.ID, editor.DisplayName(), s.today())
}

// collectViolations copies the violations of err, if it is a validation
// error, into vErr with prefix added to each field.
func collectViolations(vErr *apperrors.ValidationError, prefix string, err error) {
	if err == nil {
		return
	}
	other, ok := apperrors.AsValidationError(err)
	if !ok {
		vErr.Add(prefix, err.Error())
		return
	}
	for _, v := range other.Violations {
		vErr.Add(prefix+v.Field, v.Message)
	}
}
