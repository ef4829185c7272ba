package services

import (
	"context"
	"fmt"

	"github.com/cariesreview/catalog/internal/app/models"
)

// Home page limits.
const (
	RecentStudiesLimit    = 6
	ProvinceCoverageLimit = 10
)

// StatsService answers the aggregate queries behind the home page, the
// dashboard, the trends page and the chart API.
type StatsService interface {
	HomeSummary(ctx context.Context) (*models.HomeSummary, error)
	Overview(ctx context.Context) (*models.Overview, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	CariesByProvince(ctx context.Context) ([]models.ProvinceCaries, error)
	CariesByAge(ctx context.Context) ([]models.AgeCategoryCaries, error)
	TemporalTrends(ctx context.Context) ([]models.DecadeTrend, error)
	PublicationYearTrends(ctx context.Context) ([]models.YearTrend, error)
}

type statsServiceImpl struct {
	aggregates AggregateStore
	studies    StudyStore
}

// NewStatsService creates a new StatsService
func NewStatsService(aggregates AggregateStore, studies StudyStore) StatsService {
	return &statsServiceImpl{aggregates: aggregates, studies: studies}
}

// HomeSummary collects the overview, recent studies, coverage tables and
// quick facts.
func (s *statsServiceImpl) HomeSummary(ctx context.Context) (*models.HomeSummary, error) {
	overview, err := s.aggregates.Overview(ctx)
	if err != nil {
		return nil, err
	}
	summary := &models.HomeSummary{Overview: *overview}

	if summary.RecentStudies, err = s.studies.Recent(ctx, RecentStudiesLimit); err != nil {
		return nil, fmt.Errorf("error loading recent studies: %w", err)
	}
	if summary.ProvincialCoverage, err = s.aggregates.ProvinceCoverage(ctx, ProvinceCoverageLimit); err != nil {
		return nil, err
	}
	if summary.AgeGroupStats, err = s.aggregates.AgeGroupDistribution(ctx); err != nil {
		return nil, err
	}
	if summary.IndexUsage, err = s.aggregates.CariesIndexUsage(ctx); err != nil {
		return nil, err
	}
	facts, err := s.aggregates.QuickFacts(ctx)
	if err != nil {
		return nil, err
	}
	summary.QuickFacts = *facts
	return summary, nil
}

func (s *statsServiceImpl) Overview(ctx context.Context) (*models.Overview, error) {
	return s.aggregates.Overview(ctx)
}

// Dashboard collects the totals with the per-province and per-age-group
// tables.
func (s *statsServiceImpl) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	overview, err := s.aggregates.Overview(ctx)
	if err != nil {
		return nil, err
	}
	dashboard := &models.Dashboard{
		TotalStudies:      overview.TotalStudies,
		TotalParticipants: overview.TotalParticipants,
	}
	if dashboard.Provinces, err = s.aggregates.DashboardProvinces(ctx); err != nil {
		return nil, err
	}
	if dashboard.AgeGroups, err = s.aggregates.DashboardAgeGroups(ctx); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *statsServiceImpl) CariesByProvince(ctx context.Context) ([]models.ProvinceCaries, error) {
	return s.aggregates.CariesByProvince(ctx)
}

func (s *statsServiceImpl) CariesByAge(ctx context.Context) ([]models.AgeCategoryCaries, error) {
	return s.aggregates.CariesByAge(ctx)
}

func (s *statsServiceImpl) TemporalTrends(ctx context.Context) ([]models.DecadeTrend, error) {
	return s.aggregates.TemporalTrends(ctx)
}

func (s *statsServiceImpl) PublicationYearTrends(ctx context.Context) ([]models.YearTrend, error) {
	return s.aggregates.PublicationYearTrends(ctx)
}
