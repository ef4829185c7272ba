package services

import (
	"context"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// ProjectMetadataService handles project metadata records.
type ProjectMetadataService interface {
	List(ctx context.Context) ([]models.ProjectMetadata, error)
	Create(ctx context.Context, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error)
	Get(ctx context.Context, id int64) (*models.ProjectMetadata, error)
	Update(ctx context.Context, id int64, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error)
	Delete(ctx context.Context, id int64) error
	EnsureDefault(ctx context.Context, defaults *models.ProjectMetadata) (bool, error)
}

type projectMetadataServiceImpl struct {
	store ProjectMetadataStore
}

// NewProjectMetadataService creates a new ProjectMetadataService
func NewProjectMetadataService(store ProjectMetadataStore) ProjectMetadataService {
	return &projectMetadataServiceImpl{store: store}
}

func (s *projectMetadataServiceImpl) List(ctx context.Context) ([]models.ProjectMetadata, error) {
	return s.store.List(ctx)
}

func (s *projectMetadataServiceImpl) Create(ctx context.Context, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(m); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *projectMetadataServiceImpl) Get(ctx context.Context, id int64) (*models.ProjectMetadata, error) {
	return s.store.GetByID(ctx, id)
}

func (s *projectMetadataServiceImpl) Update(ctx context.Context, id int64, req *dto.ProjectMetadataRequest) (*models.ProjectMetadata, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := validation.Struct(m); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *projectMetadataServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// EnsureDefault stores defaults when no record exists yet and reports
// whether it did.
func (s *projectMetadataServiceImpl) EnsureDefault(ctx context.Context, defaults *models.ProjectMetadata) (bool, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}
	if len(records) > 0 {
		return false, nil
	}
	defaults.ApplyDefaults()
	if err := validation.Struct(defaults); err != nil {
		return false, err
	}
	if err := s.store.Create(ctx, defaults); err != nil {
		return false, err
	}
	return true, nil
}
