package models

import "time"

// Defaults applied to new project metadata records.
const (
	DefaultProjectName      = "Dental Caries Prevalence in Canada 1990-2025"
	DefaultProtocolVersion  = "1.0"
	DefaultAnalysisSoftware = "R with INLA"
)

// ProjectMetadata holds review-protocol settings. Only the first record is
// shown by the public pages.
type ProjectMetadata struct {
	ID                   int64     `json:"id"`
	ProjectName          string    `json:"project_name" validate:"notblank,max=200"`
	ProtocolVersion      string    `json:"protocol_version" validate:"notblank,max=20"`
	LastUpdated          time.Time `json:"last_updated"`
	SearchStartDate      time.Time `json:"search_start_date" validate:"required"`
	SearchEndDate        time.Time `json:"search_end_date" validate:"required"`
	DatabasesSearched    []string  `json:"databases_searched" validate:"required,min=1,dive,notblank"`
	InclusionCriteria    string    `json:"inclusion_criteria" validate:"notblank"`
	ExclusionCriteria    string    `json:"exclusion_criteria" validate:"notblank"`
	AnalysisSoftware     string    `json:"analysis_software" validate:"notblank,max=100"`
	BayesianModelVersion *string   `json:"bayesian_model_version,omitempty" validate:"omitempty,max=50"`
}

// ApplyDefaults fills the fields that carry protocol defaults.
func (m *ProjectMetadata) ApplyDefaults() {
	if m.ProjectName == "" {
		m.ProjectName = DefaultProjectName
	}
	if m.ProtocolVersion == "" {
		m.ProtocolVersion = DefaultProtocolVersion
	}
	if m.AnalysisSoftware == "" {
		m.AnalysisSoftware = DefaultAnalysisSoftware
	}
}
