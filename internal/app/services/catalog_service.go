package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/repositories"
	"github.com/cariesreview/catalog/internal/pkg/helpers"
)

// CatalogService answers the public study queries.
type CatalogService interface {
	ListStudies(ctx context.Context, filter models.StudyFilter, sort models.StudySort, page int) (*models.StudyPage, error)
	SearchStudies(ctx context.Context, query string, page int) (*models.StudyPage, error)
	GetStudyDetail(ctx context.Context, studyID string) (*models.StudyDetail, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	ProjectMetadata(ctx context.Context) (*models.ProjectMetadata, error)
}

type catalogServiceImpl struct {
	studies  StudyStore
	points   CariesDataStore
	notes    ExtractionNoteStore
	project  ProjectMetadataStore
	pageSize int
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(studies StudyStore, points CariesDataStore, notes ExtractionNoteStore, project ProjectMetadataStore, pageSize int) CatalogService {
	return &catalogServiceImpl{
		studies:  studies,
		points:   points,
		notes:    notes,
		project:  project,
		pageSize: helpers.NormalizePageSize(pageSize),
	}
}

// ListStudies returns one page of studies matching filter.
func (s *catalogServiceImpl) ListStudies(ctx context.Context, filter models.StudyFilter, sort models.StudySort, page int) (*models.StudyPage, error) {
	if sort.Field == "" {
		var err error
		if sort, err = models.ParseStudySort(""); err != nil {
			return nil, err
		}
	}
	return s.studies.List(ctx, filter, sort, page, s.pageSize)
}

// SearchStudies returns one page of free-text search results. An empty query
// yields an empty page.
func (s *catalogServiceImpl) SearchStudies(ctx context.Context, query string, page int) (*models.StudyPage, error) {
	if query == "" {
		return &models.StudyPage{Studies: []models.Study{}, Page: 1, Size: s.pageSize}, nil
	}
	return s.studies.Search(ctx, query, page, s.pageSize)
}

// GetStudyDetail loads a study by its external identifier with its data
// points, notes and related studies.
func (s *catalogServiceImpl) GetStudyDetail(ctx context.Context, studyID string) (*models.StudyDetail, error) {
	study, err := s.studies.GetByStudyID(ctx, strings.TrimSpace(studyID))
	if err != nil {
		return nil, err
	}

	detail := &models.StudyDetail{Study: *study}
	if detail.DataPoints, err = s.points.ListByStudy(ctx, study.ID); err != nil {
		return nil, fmt.Errorf("error loading caries data: %w", err)
	}
	if detail.Notes, err = s.notes.ListByStudy(ctx, study.ID); err != nil {
		return nil, fmt.Errorf("error loading extraction notes: %w", err)
	}
	if detail.Related, err = s.studies.Related(ctx, study, repositories.RelatedStudiesLimit); err != nil {
		return nil, fmt.Errorf("error loading related studies: %w", err)
	}
	return detail, nil
}

// FilterOptions lists the values available to the listing filters.
func (s *catalogServiceImpl) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return s.studies.FilterOptions(ctx)
}

// ProjectMetadata returns the record shown on the public pages.
func (s *catalogServiceImpl) ProjectMetadata(ctx context.Context) (*models.ProjectMetadata, error) {
	return s.project.First(ctx)
}
