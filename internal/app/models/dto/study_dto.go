package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// StudyRequest is the body of study create and update calls. Dates use
// YYYY-MM-DD. CariesData and ExtractionNotes are only read on create.
type StudyRequest struct {
	StudyID             string                     `json:"study_id" binding:"required" example:"ON-2014-001"`
	Title               string                     `json:"title" binding:"required"`
	Authors             string                     `json:"authors" binding:"required"`
	Journal             *string                    `json:"journal"`
	PublicationYear     int                        `json:"publication_year" binding:"required" example:"2016"`
	DOI                 *string                    `json:"doi"`
	PubMedID            *string                    `json:"pubmed_id"`
	StudyDesign         models.StudyDesign         `json:"study_design" binding:"required" example:"cross_sectional"`
	StudySetting        models.StudySetting        `json:"study_setting" binding:"required" example:"school"`
	Province            models.Province            `json:"province" binding:"required" example:"ON"`
	CityRegion          *string                    `json:"city_region"`
	SampleSize          int                        `json:"sample_size" binding:"required" example:"1200"`
	AgeGroup            models.AgeGroup            `json:"age_group" binding:"required" example:"school_age"`
	AgeMin              *float64                   `json:"age_min" binding:"required" example:"6"`
	AgeMax              *float64                   `json:"age_max" binding:"required" example:"12"`
	DataCollectionStart string                     `json:"data_collection_start" binding:"required,datetime=2006-01-02" example:"2014-09-01"`
	DataCollectionEnd   string                     `json:"data_collection_end" binding:"required,datetime=2006-01-02" example:"2015-06-30"`
	CariesIndexUsed     models.CariesIndex         `json:"caries_index_used" binding:"required" example:"DMFT"`
	ExaminationCriteria models.ExaminationCriteria `json:"examination_criteria" binding:"required" example:"who_2013"`
	QualityScore        *int                       `json:"quality_score" example:"7"`
	RiskOfBias          *models.RiskOfBias         `json:"risk_of_bias" example:"low"`
	ExtractedBy         string                     `json:"extracted_by"`
	Notes               *string                    `json:"notes"`
	CariesData          []CariesDataRequest        `json:"caries_data" binding:"omitempty,dive"`
	ExtractionNotes     []ExtractionNoteRequest    `json:"extraction_notes" binding:"omitempty,dive"`
}

// ToModel converts the request into a study. Verification fields are never
// taken from the request.
func (r *StudyRequest) ToModel() (*models.Study, error) {
	vErr := &apperrors.ValidationError{}
	start := collectDate(vErr, "data_collection_start", r.DataCollectionStart)
	end := collectDate(vErr, "data_collection_end", r.DataCollectionEnd)
	ageMin := requiredValue(vErr, "age_min", r.AgeMin)
	ageMax := requiredValue(vErr, "age_max", r.AgeMax)
	if vErr.HasViolations() {
		return nil, vErr
	}

	return &models.Study{
		StudyID:             strings.TrimSpace(r.StudyID),
		Title:               strings.TrimSpace(r.Title),
		Authors:             strings.TrimSpace(r.Authors),
		Journal:             trimmed(r.Journal),
		PublicationYear:     r.PublicationYear,
		DOI:                 trimmed(r.DOI),
		PubMedID:            trimmed(r.PubMedID),
		StudyDesign:         r.StudyDesign,
		StudySetting:        r.StudySetting,
		Province:            r.Province,
		CityRegion:          trimmed(r.CityRegion),
		SampleSize:          r.SampleSize,
		AgeGroup:            r.AgeGroup,
		AgeMin:              ageMin,
		AgeMax:              ageMax,
		DataCollectionStart: start,
		DataCollectionEnd:   end,
		CariesIndexUsed:     r.CariesIndexUsed,
		ExaminationCriteria: r.ExaminationCriteria,
		QualityScore:        r.QualityScore,
		RiskOfBias:          r.RiskOfBias,
		ExtractedBy:         strings.TrimSpace(r.ExtractedBy),
		Notes:               trimmed(r.Notes),
	}, nil
}

// StudyResponse is the public view of a study.
type StudyResponse struct {
	ID                  int64                      `json:"id" example:"1"`
	StudyID             string                     `json:"study_id" example:"ON-2014-001"`
	Title               string                     `json:"title"`
	Authors             string                     `json:"authors"`
	Journal             *string                    `json:"journal"`
	PublicationYear     int                        `json:"publication_year" example:"2016"`
	DOI                 *string                    `json:"doi"`
	DOIURL              *string                    `json:"doi_url"`
	PubMedID            *string                    `json:"pubmed_id"`
	PubMedURL           *string                    `json:"pubmed_url"`
	StudyDesign         models.StudyDesign         `json:"study_design"`
	StudySetting        models.StudySetting        `json:"study_setting"`
	Province            models.Province            `json:"province"`
	CityRegion          *string                    `json:"city_region"`
	SampleSize          int                        `json:"sample_size"`
	AgeGroup            models.AgeGroup            `json:"age_group"`
	AgeMin              float64                    `json:"age_min"`
	AgeMax              float64                    `json:"age_max"`
	DataCollectionStart string                     `json:"data_collection_start" example:"2014-09-01"`
	DataCollectionEnd   string                     `json:"data_collection_end" example:"2015-06-30"`
	CariesIndexUsed     models.CariesIndex         `json:"caries_index_used"`
	ExaminationCriteria models.ExaminationCriteria `json:"examination_criteria"`
	QualityScore        *int                       `json:"quality_score"`
	RiskOfBias          *models.RiskOfBias         `json:"risk_of_bias"`
	ExtractedBy         string                     `json:"extracted_by"`
	ExtractionDate      string                     `json:"extraction_date"`
	VerifiedBy          *string                    `json:"verified_by"`
	VerificationDate    *string                    `json:"verification_date"`
	Notes               *string                    `json:"notes"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// FromStudy converts a study model to its response.
func FromStudy(s *models.Study) StudyResponse {
	resp := StudyResponse{
		ID:                  s.ID,
		StudyID:             s.StudyID,
		Title:               s.Title,
		Authors:             s.Authors,
		Journal:             s.Journal,
		PublicationYear:     s.PublicationYear,
		DOI:                 s.DOI,
		PubMedID:            s.PubMedID,
		StudyDesign:         s.StudyDesign,
		StudySetting:        s.StudySetting,
		Province:            s.Province,
		CityRegion:          s.CityRegion,
		SampleSize:          s.SampleSize,
		AgeGroup:            s.AgeGroup,
		AgeMin:              s.AgeMin,
		AgeMax:              s.AgeMax,
		DataCollectionStart: s.DataCollectionStart.Format(dateLayout),
		DataCollectionEnd:   s.DataCollectionEnd.Format(dateLayout),
		CariesIndexUsed:     s.CariesIndexUsed,
		ExaminationCriteria: s.ExaminationCriteria,
		QualityScore:        s.QualityScore,
		RiskOfBias:          s.RiskOfBias,
		ExtractedBy:         s.ExtractedBy,
		ExtractionDate:      s.ExtractionDate.Format(dateLayout),
		VerifiedBy:          s.VerifiedBy,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if u := s.DOIURL(); u != "" {
		resp.DOIURL = &u
	}
	if u := s.PubMedURL(); u != "" {
		resp.PubMedURL = &u
	}
	if s.VerificationDate != nil {
		d := s.VerificationDate.Format(dateLayout)
		resp.VerificationDate = &d
	}
	return resp
}

// FromStudies converts a slice of studies.
func FromStudies(studies []models.Study) []StudyResponse {
	out := make([]StudyResponse, 0, len(studies))
	for i := range studies {
		out = append(out, FromStudy(&studies[i]))
	}
	return out
}

// StudyListResponse is one page of studies.
type StudyListResponse struct {
	Studies    []StudyResponse `json:"studies"`
	Pagination PaginationInfo  `json:"pagination"`
}

// StudyDetailResponse is a study with its child records.
type StudyDetailResponse struct {
	Study           StudyResponse            `json:"study"`
	CariesData      []models.CariesDataPoint `json:"caries_data"`
	ExtractionNotes []models.ExtractionNote  `json:"extraction_notes"`
	RelatedStudies  []StudyResponse          `json:"related_studies"`
}

// FromStudyDetail converts a detail aggregate to its response.
func FromStudyDetail(d *models.StudyDetail) StudyDetailResponse {
	resp := StudyDetailResponse{
		Study:           FromStudy(&d.Study),
		CariesData:      d.DataPoints,
		ExtractionNotes: d.Notes,
		RelatedStudies:  FromStudies(d.Related),
	}
	if resp.CariesData == nil {
		resp.CariesData = []models.CariesDataPoint{}
	}
	if resp.ExtractionNotes == nil {
		resp.ExtractionNotes = []models.ExtractionNote{}
	}
	return resp
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("must be a date formatted as %s", dateLayout))
	}
	return t, nil
}

func collectDate(vErr *apperrors.ValidationError, field, value string) time.Time {
	t, err := parseDate(field, value)
	if err != nil {
		vErr.Add(field, fmt.Sprintf("must be a date formatted as %s", dateLayout))
	}
	return t
}

// requiredValue reports a missing measurement. An explicit zero is kept.
func requiredValue(vErr *apperrors.ValidationError, field string, v *float64) float64 {
	if v == nil {
		vErr.Add(field, "this field is required")
		return 0
	}
	return *v
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
