package models

import "time"

// CariesDataPoint is one stratified measurement reported by a study, for
// example "females, 12 years, low SES".
type CariesDataPoint struct {
	ID                      int64                `json:"id"`
	StudyID                 int64                `json:"study"`
	Sex                     Sex                  `json:"sex" validate:"enum"`
	AgeCategory             string               `json:"age_category" validate:"notblank,max=50"`
	SocioeconomicStatus     *SocioeconomicStatus `json:"socioeconomic_status,omitempty" validate:"omitempty,enum"`
	SampleSizeGroup         int                  `json:"sample_size_group" validate:"gt=0"`
	CariesPrevalence        float64              `json:"caries_prevalence" validate:"min=0,max=100"`
	CariesPrevalenceCILower *float64             `json:"caries_prevalence_ci_lower,omitempty" validate:"omitempty,min=0,max=100"`
	CariesPrevalenceCIUpper *float64             `json:"caries_prevalence_ci_upper,omitempty" validate:"omitempty,min=0,max=100"`
	MeanDMFT                float64              `json:"mean_dmft" validate:"min=0"`
	MeanDMFTSD              *float64             `json:"mean_dmft_sd,omitempty" validate:"omitempty,min=0"`
	MeanDecayed             *float64             `json:"mean_decayed,omitempty" validate:"omitempty,min=0"`
	MeanMissing             *float64             `json:"mean_missing,omitempty" validate:"omitempty,min=0"`
	MeanFilled              *float64             `json:"mean_filled,omitempty" validate:"omitempty,min=0"`
	CareIndex               *float64             `json:"care_index,omitempty" validate:"omitempty,min=0,max=100"`
	CreatedAt               time.Time            `json:"created_at"`
	UpdatedAt               time.Time            `json:"updated_at"`
}

// StratumKey identifies the stratification a data point reports; at most one
// data point per study may carry a given key.
type StratumKey struct {
	Sex                 Sex
	AgeCategory         string
	SocioeconomicStatus SocioeconomicStatus
}

// Stratum returns the point's stratification with a missing SES mapped to "".
func (p *CariesDataPoint) Stratum() StratumKey {
	key := StratumKey{Sex: p.Sex, AgeCategory: p.AgeCategory}
	if p.SocioeconomicStatus != nil {
		key.SocioeconomicStatus = *p.SocioeconomicStatus
	}
	return key
}
