package models

import (
	"strings"
	"time"
)

// Study is one publication included in the systematic review.
type Study struct {
	ID                  int64               `json:"id"`
	StudyID             string              `json:"study_id" validate:"notblank,max=50"`
	Title               string              `json:"title" validate:"notblank"`
	Authors             string              `json:"authors" validate:"notblank"`
	Journal             *string             `json:"journal,omitempty" validate:"omitempty,max=500"`
	PublicationYear     int                 `json:"publication_year" validate:"min=1900,max=2050"`
	DOI                 *string             `json:"doi,omitempty" validate:"omitempty,max=255"`
	PubMedID            *string             `json:"pubmed_id,omitempty" validate:"omitempty,max=20"`
	StudyDesign         StudyDesign         `json:"study_design" validate:"enum"`
	StudySetting        StudySetting        `json:"study_setting" validate:"enum"`
	Province            Province            `json:"province" validate:"enum"`
	CityRegion          *string             `json:"city_region,omitempty" validate:"omitempty,max=200"`
	SampleSize          int                 `json:"sample_size" validate:"gt=0"`
	AgeGroup            AgeGroup            `json:"age_group" validate:"enum"`
	AgeMin              float64             `json:"age_min" validate:"min=0,max=120"`
	AgeMax              float64             `json:"age_max" validate:"min=0,max=120,gtefield=AgeMin"`
	DataCollectionStart time.Time           `json:"data_collection_start" validate:"required"`
	DataCollectionEnd   time.Time           `json:"data_collection_end" validate:"required,gtefield=DataCollectionStart"`
	CariesIndexUsed     CariesIndex         `json:"caries_index_used" validate:"enum"`
	ExaminationCriteria ExaminationCriteria `json:"examination_criteria" validate:"enum"`
	QualityScore        *int                `json:"quality_score,omitempty" validate:"omitempty,min=0,max=10"`
	RiskOfBias          *RiskOfBias         `json:"risk_of_bias,omitempty" validate:"omitempty,enum"`
	ExtractedBy         string              `json:"extracted_by" validate:"notblank,max=100"`
	ExtractionDate      time.Time           `json:"extraction_date"`
	VerifiedBy          *string             `json:"verified_by,omitempty" validate:"omitempty,max=100"`
	VerificationDate    *time.Time          `json:"verification_date,omitempty"`
	Notes               *string             `json:"notes,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// DOIURL links to the resolver for the study's DOI, or "" when none is recorded.
func (s *Study) DOIURL() string {
	if s.DOI == nil || strings.TrimSpace(*s.DOI) == "" {
		return ""
	}
	return "https://doi.org/" + strings.TrimSpace(*s.DOI)
}

// PubMedURL links to the PubMed entry, or "" when none is recorded.
func (s *Study) PubMedURL() string {
	if s.PubMedID == nil || strings.TrimSpace(*s.PubMedID) == "" {
		return ""
	}
	return "https://pubmed.ncbi.nlm.nih.gov/" + strings.TrimSpace(*s.PubMedID) + "/"
}

// IsVerified reports whether a second reviewer signed off the extraction.
func (s *Study) IsVerified() bool {
	return s.VerifiedBy != nil && *s.VerifiedBy != ""
}

// ShortTitle truncates the title for listings.
func (s *Study) ShortTitle(max int) string {
	runes := []rune(s.Title)
	if max <= 0 || len(runes) <= max {
		return s.Title
	}
	return string(runes[:max]) + "..."
}
