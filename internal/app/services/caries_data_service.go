package services

import (
	"context"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// CariesDataService handles data point reads and writes from the editing API.
type CariesDataService interface {
	ListForStudy(ctx context.Context, studyID string) ([]models.CariesDataPoint, error)
	Create(ctx context.Context, studyID string, req *dto.CariesDataRequest) (*models.CariesDataPoint, error)
	Get(ctx context.Context, id int64) (*models.CariesDataPoint, error)
	Update(ctx context.Context, id int64, req *dto.CariesDataRequest) (*models.CariesDataPoint, error)
	Delete(ctx context.Context, id int64) error
}

type cariesDataServiceImpl struct {
	points  CariesDataStore
	studies StudyStore
}

// NewCariesDataService creates a new CariesDataService
func NewCariesDataService(points CariesDataStore, studies StudyStore) CariesDataService {
	return &cariesDataServiceImpl{points: points, studies: studies}
}

func (s *cariesDataServiceImpl) ListForStudy(ctx context.Context, studyID string) ([]models.CariesDataPoint, error) {
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	return s.points.ListByStudy(ctx, study.ID)
}

// Create adds a data point to a study. A second point for the same stratum
// is rejected by the store.
func (s *cariesDataServiceImpl) Create(ctx context.Context, studyID string, req *dto.CariesDataRequest) (*models.CariesDataPoint, error) {
	study, err := s.studies.GetByStudyID(ctx, studyID)
	if err != nil {
		return nil, err
	}

	p, err := req.ToModel(study.ID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	if err := s.points.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cariesDataServiceImpl) Get(ctx context.Context, id int64) (*models.CariesDataPoint, error) {
	return s.points.GetByID(ctx, id)
}

// Update overwrites a data point. It stays attached to its study.
func (s *cariesDataServiceImpl) Update(ctx context.Context, id int64, req *dto.CariesDataRequest) (*models.CariesDataPoint, error) {
	existing, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := req.ToModel(existing.StudyID)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	if err := s.points.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cariesDataServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.points.Delete(ctx, id)
}
