package dto

import (
	"strings"
	"time"

	"github.com/cariesreview/catalog/internal/app/models"
)

// ProjectMetadataRequest is the body of project metadata create and update
// calls. Blank name, version and software fall back to the protocol defaults.
type ProjectMetadataRequest struct {
	ProjectName          string   `json:"project_name" example:"Dental Caries Prevalence in Canada 1990-2025"`
	ProtocolVersion      string   `json:"protocol_version" example:"1.0"`
	SearchStartDate      string   `json:"search_start_date" binding:"required,datetime=2006-01-02" example:"1990-01-01"`
	SearchEndDate        string   `json:"search_end_date" binding:"required,datetime=2006-01-02" example:"2025-06-30"`
	DatabasesSearched    []string `json:"databases_searched" binding:"required" example:"MEDLINE,Embase"`
	InclusionCriteria    string   `json:"inclusion_criteria" binding:"required"`
	ExclusionCriteria    string   `json:"exclusion_criteria" binding:"required"`
	AnalysisSoftware     string   `json:"analysis_software" example:"R with INLA"`
	BayesianModelVersion *string  `json:"bayesian_model_version"`
}

// ToModel converts the request into project metadata with defaults applied.
func (r *ProjectMetadataRequest) ToModel() (*models.ProjectMetadata, error) {
	start, err := parseDate("search_start_date", r.SearchStartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("search_end_date", r.SearchEndDate)
	if err != nil {
		return nil, err
	}

	databases := make([]string, 0, len(r.DatabasesSearched))
	for _, db := range r.DatabasesSearched {
		databases = append(databases, strings.TrimSpace(db))
	}

	m := &models.ProjectMetadata{
		ProjectName:          strings.TrimSpace(r.ProjectName),
		ProtocolVersion:      strings.TrimSpace(r.ProtocolVersion),
		SearchStartDate:      start,
		SearchEndDate:        end,
		DatabasesSearched:    databases,
		InclusionCriteria:    strings.TrimSpace(r.InclusionCriteria),
		ExclusionCriteria:    strings.TrimSpace(r.ExclusionCriteria),
		AnalysisSoftware:     strings.TrimSpace(r.AnalysisSoftware),
		BayesianModelVersion: trimmed(r.BayesianModelVersion),
	}
	m.ApplyDefaults()
	return m, nil
}

// ProjectMetadataResponse is the public view of project metadata.
type ProjectMetadataResponse struct {
	ID                   int64     `json:"id"`
	ProjectName          string    `json:"project_name"`
	ProtocolVersion      string    `json:"protocol_version"`
	LastUpdated          time.Time `json:"last_updated"`
	SearchStartDate      string    `json:"search_start_date" example:"1990-01-01"`
	SearchEndDate        string    `json:"search_end_date" example:"2025-06-30"`
	DatabasesSearched    []string  `json:"databases_searched"`
	InclusionCriteria    string    `json:"inclusion_criteria"`
	ExclusionCriteria    string    `json:"exclusion_criteria"`
	AnalysisSoftware     string    `json:"analysis_software"`
	BayesianModelVersion *string   `json:"bayesian_model_version"`
}

// FromProjectMetadata converts a project metadata model to its response.
func FromProjectMetadata(m *models.ProjectMetadata) ProjectMetadataResponse {
	return ProjectMetadataResponse{
		ID:                   m.ID,
		ProjectName:          m.ProjectName,
		ProtocolVersion:      m.ProtocolVersion,
		LastUpdated:          m.LastUpdated,
		SearchStartDate:      m.SearchStartDate.Format(dateLayout),
		SearchEndDate:        m.SearchEndDate.Format(dateLayout),
		DatabasesSearched:    m.DatabasesSearched,
		InclusionCriteria:    m.InclusionCriteria,
		ExclusionCriteria:    m.ExclusionCriteria,
		AnalysisSoftware:     m.AnalysisSoftware,
		BayesianModelVersion: m.BayesianModelVersion,
	}
}
