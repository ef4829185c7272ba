package dto

import (
	"strings"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// CariesDataRequest is the body of data point create and update calls.
type CariesDataRequest struct {
	Sex                     models.Sex                  `json:"sex" binding:"required" example:"female"`
	AgeCategory             string                      `json:"age_category" binding:"required" example:"12 years"`
	SocioeconomicStatus     *models.SocioeconomicStatus `json:"socioeconomic_status" example:"low"`
	SampleSizeGroup         int                         `json:"sample_size_group" binding:"required" example:"310"`
	CariesPrevalence        *float64                    `json:"caries_prevalence" binding:"required" example:"42.5"`
	CariesPrevalenceCILower *float64                    `json:"caries_prevalence_ci_lower"`
	CariesPrevalenceCIUpper *float64                    `json:"caries_prevalence_ci_upper"`
	MeanDMFT                *float64                    `json:"mean_dmft" binding:"required" example:"1.8"`
	MeanDMFTSD              *float64                    `json:"mean_dmft_sd"`
	MeanDecayed             *float64                    `json:"mean_decayed"`
	MeanMissing             *float64                    `json:"mean_missing"`
	MeanFilled              *float64                    `json:"mean_filled"`
	CareIndex               *float64                    `json:"care_index"`
}

// ToModel converts the request into a data point for studyID. Prevalence and
// mean dmft/DMFT must be present.
func (r *CariesDataRequest) ToModel(studyID int64) (*models.CariesDataPoint, error) {
	vErr := &apperrors.ValidationError{}
	prevalence := requiredValue(vErr, "caries_prevalence", r.CariesPrevalence)
	dmft := requiredValue(vErr, "mean_dmft", r.MeanDMFT)
	if vErr.HasViolations() {
		return nil, vErr
	}

	return &models.CariesDataPoint{
		StudyID:                 studyID,
		Sex:                     r.Sex,
		AgeCategory:             strings.TrimSpace(r.AgeCategory),
		SocioeconomicStatus:     r.SocioeconomicStatus,
		SampleSizeGroup:         r.SampleSizeGroup,
		CariesPrevalence:        prevalence,
		CariesPrevalenceCILower: r.CariesPrevalenceCILower,
		CariesPrevalenceCIUpper: r.CariesPrevalenceCIUpper,
		MeanDMFT:                dmft,
		MeanDMFTSD:              r.MeanDMFTSD,
		MeanDecayed:             r.MeanDecayed,
		MeanMissing:             r.MeanMissing,
		MeanFilled:              r.MeanFilled,
		CareIndex:               r.CareIndex,
	}, nil
}

// ExtractionNoteRequest is the body of note create calls. CreatedBy defaults
// to the authenticated editor.
type ExtractionNoteRequest struct {
	NoteType  models.NoteType `json:"note_type" binding:"required" example:"quality"`
	NoteText  string          `json:"note_text" binding:"required"`
	CreatedBy string          `json:"created_by"`
}

// ToModel converts the request into a note for studyID.
func (r *ExtractionNoteRequest) ToModel(studyID int64) *models.ExtractionNote {
	return &models.ExtractionNote{
		StudyID:   studyID,
		NoteType:  r.NoteType,
		NoteText:  strings.TrimSpace(r.NoteText),
		CreatedBy: strings.TrimSpace(r.CreatedBy),
	}
}
