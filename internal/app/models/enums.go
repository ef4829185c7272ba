package models

// Closed value sets stored on studies and their child records. Every type
// implements Valid so the validation package can reject anything else.

// StudyDesign is the design of an included study.
type StudyDesign string

const (
	StudyDesignCrossSectional  StudyDesign = "cross_sectional"
	StudyDesignLongitudinal    StudyDesign = "longitudinal"
	StudyDesignCohort          StudyDesign = "cohort"
	StudyDesignCaseControl     StudyDesign = "case_control"
	StudyDesignRandomizedTrial StudyDesign = "randomized_trial"
	StudyDesignOther           StudyDesign = "other"
)

var studyDesignLabels = map[StudyDesign]string{
	StudyDesignCrossSectional:  "Cross-sectional",
	StudyDesignLongitudinal:    "Longitudinal",
	StudyDesignCohort:          "Cohort",
	StudyDesignCaseControl:     "Case-control",
	StudyDesignRandomizedTrial: "Randomized Controlled Trial",
	StudyDesignOther:           "Other",
}

func (d StudyDesign) Valid() bool {
	_, ok := studyDesignLabels[d]
	return ok
}

func (d StudyDesign) Label() string {
	return labelOr(studyDesignLabels[d], string(d))
}

// StudySetting is where participants were recruited.
type StudySetting string

const (
	StudySettingPopulation StudySetting = "population"
	StudySettingSchool     StudySetting = "school"
	StudySettingClinic     StudySetting = "clinic"
	StudySettingCommunity  StudySetting = "community"
	StudySettingOther      StudySetting = "other"
)

var studySettingLabels = map[StudySetting]string{
	StudySettingPopulation: "Population-based",
	StudySettingSchool:     "School-based",
	StudySettingClinic:     "Clinic-based",
	StudySettingCommunity:  "Community-based",
	StudySettingOther:      "Other",
}

func (s StudySetting) Valid() bool {
	_, ok := studySettingLabels[s]
	return ok
}

func (s StudySetting) Label() string {
	return labelOr(studySettingLabels[s], string(s))
}

// Province is a Canadian province or territory, or "national" for
// multi-provincial studies.
type Province string

const (
	ProvinceAlberta                 Province = "AB"
	ProvinceBritishColumbia         Province = "BC"
	ProvinceManitoba                Province = "MB"
	ProvinceNewBrunswick            Province = "NB"
	ProvinceNewfoundlandAndLabrador Province = "NL"
	ProvinceNovaScotia              Province = "NS"
	ProvinceOntario                 Province = "ON"
	ProvincePrinceEdwardIsland      Province = "PE"
	ProvinceQuebec                  Province = "QC"
	ProvinceSaskatchewan            Province = "SK"
	ProvinceNorthwestTerritories    Province = "NT"
	ProvinceNunavut                 Province = "NU"
	ProvinceYukon                   Province = "YT"
	ProvinceNational                Province = "national"
)

var provinceLabels = map[Province]string{
	ProvinceAlberta:                 "Alberta",
	ProvinceBritishColumbia:         "British Columbia",
	ProvinceManitoba:                "Manitoba",
	ProvinceNewBrunswick:            "New Brunswick",
	ProvinceNewfoundlandAndLabrador: "Newfoundland and Labrador",
	ProvinceNovaScotia:              "Nova Scotia",
	ProvinceOntario:                 "Ontario",
	ProvincePrinceEdwardIsland:      "Prince Edward Island",
	ProvinceQuebec:                  "Quebec",
	ProvinceSaskatchewan:            "Saskatchewan",
	ProvinceNorthwestTerritories:    "Northwest Territories",
	ProvinceNunavut:                 "Nunavut",
	ProvinceYukon:                   "Yukon",
	ProvinceNational:                "National/Multi-provincial",
}

func (p Province) Valid() bool {
	_, ok := provinceLabels[p]
	return ok
}

func (p Province) Label() string {
	return labelOr(provinceLabels[p], string(p))
}

// AgeGroup is the primary age band of a study population.
type AgeGroup string

const (
	AgeGroupPreschool  AgeGroup = "preschool"
	AgeGroupSchoolAge  AgeGroup = "school_age"
	AgeGroupAdolescent AgeGroup = "adolescent"
	AgeGroupAdult      AgeGroup = "adult"
	AgeGroupElderly    AgeGroup = "elderly"
	AgeGroupMixed      AgeGroup = "mixed"
)

var ageGroupLabels = map[AgeGroup]string{
	AgeGroupPreschool:  "Preschool (0-5 years)",
	AgeGroupSchoolAge:  "School age (6-12 years)",
	AgeGroupAdolescent: "Adolescent (13-18 years)",
	AgeGroupAdult:      "Adult (19-64 years)",
	AgeGroupElderly:    "Elderly (65+ years)",
	AgeGroupMixed:      "Mixed age groups",
}

func (a AgeGroup) Valid() bool {
	_, ok := ageGroupLabels[a]
	return ok
}

func (a AgeGroup) Label() string {
	return labelOr(ageGroupLabels[a], string(a))
}

// CariesIndex is the caries index a study reports. Case matters: lower case
// indices count deciduous teeth, upper case permanent teeth.
type CariesIndex string

const (
	CariesIndexDeciduousTeeth    CariesIndex = "dmft"
	CariesIndexDeciduousSurfaces CariesIndex = "dmfs"
	CariesIndexPermanentTeeth    CariesIndex = "DMFT"
	CariesIndexPermanentSurfaces CariesIndex = "DMFS"
	CariesIndexMixedDentition    CariesIndex = "dmft_DMFT"
	CariesIndexOther             CariesIndex = "other"
)

var cariesIndexLabels = map[CariesIndex]string{
	CariesIndexDeciduousTeeth:    "dmft (deciduous teeth)",
	CariesIndexDeciduousSurfaces: "dmfs (deciduous teeth surfaces)",
	CariesIndexPermanentTeeth:    "DMFT (permanent teeth)",
	CariesIndexPermanentSurfaces: "DMFS (permanent teeth surfaces)",
	CariesIndexMixedDentition:    "dmft + DMFT (mixed dentition)",
	CariesIndexOther:             "Other index",
}

func (c CariesIndex) Valid() bool {
	_, ok := cariesIndexLabels[c]
	return ok
}

func (c CariesIndex) Label() string {
	return labelOr(cariesIndexLabels[c], string(c))
}

// ExaminationCriteria is the caries detection standard used by examiners.
type ExaminationCriteria string

const (
	ExaminationWHO1997 ExaminationCriteria = "who_1997"
	ExaminationWHO2013 ExaminationCriteria = "who_2013"
	ExaminationICDAS   ExaminationCriteria = "icdas"
	ExaminationOther   ExaminationCriteria = "other"
)

var examinationLabels = map[ExaminationCriteria]string{
	ExaminationWHO1997: "WHO 1997",
	ExaminationWHO2013: "WHO 2013",
	ExaminationICDAS:   "ICDAS",
	ExaminationOther:   "Other criteria",
}

func (e ExaminationCriteria) Valid() bool {
	_, ok := examinationLabels[e]
	return ok
}

func (e ExaminationCriteria) Label() string {
	return labelOr(examinationLabels[e], string(e))
}

// RiskOfBias is the overall risk-of-bias judgement.
type RiskOfBias string

const (
	RiskOfBiasLow      RiskOfBias = "low"
	RiskOfBiasModerate RiskOfBias = "moderate"
	RiskOfBiasHigh     RiskOfBias = "high"
	RiskOfBiasUnclear  RiskOfBias = "unclear"
)

var riskOfBiasLabels = map[RiskOfBias]string{
	RiskOfBiasLow:      "Low",
	RiskOfBiasModerate: "Moderate",
	RiskOfBiasHigh:     "High",
	RiskOfBiasUnclear:  "Unclear",
}

func (r RiskOfBias) Valid() bool {
	_, ok := riskOfBiasLabels[r]
	return ok
}

func (r RiskOfBias) Label() string {
	return labelOr(riskOfBiasLabels[r], string(r))
}

// Sex of a stratified population group.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexMixed  Sex = "mixed"
)

var sexLabels = map[Sex]string{
	SexMale:   "Male",
	SexFemale: "Female",
	SexMixed:  "Mixed/Combined",
}

func (s Sex) Valid() bool {
	_, ok := sexLabels[s]
	return ok
}

func (s Sex) Label() string {
	return labelOr(sexLabels[s], string(s))
}

// SocioeconomicStatus of a stratified population group.
type SocioeconomicStatus string

const (
	SESLow          SocioeconomicStatus = "low"
	SESMiddle       SocioeconomicStatus = "middle"
	SESHigh         SocioeconomicStatus = "high"
	SESMixed        SocioeconomicStatus = "mixed"
	SESNotSpecified SocioeconomicStatus = "not_specified"
)

var sesLabels = map[SocioeconomicStatus]string{
	SESLow:          "Low SES",
	SESMiddle:       "Middle SES",
	SESHigh:         "High SES",
	SESMixed:        "Mixed SES",
	SESNotSpecified: "Not specified",
}

func (s SocioeconomicStatus) Valid() bool {
	_, ok := sesLabels[s]
	return ok
}

func (s SocioeconomicStatus) Label() string {
	return labelOr(sesLabels[s], string(s))
}

// NoteType classifies an extraction note.
type NoteType string

const (
	NoteTypeExtraction    NoteType = "extraction"
	NoteTypeQuality       NoteType = "quality"
	NoteTypeClarification NoteType = "clarification"
	NoteTypeExclusion     NoteType = "exclusion"
	NoteTypeOther         NoteType = "other"
)

var noteTypeLabels = map[NoteType]string{
	NoteTypeExtraction:    "Data Extraction Note",
	NoteTypeQuality:       "Quality Assessment Note",
	NoteTypeClarification: "Clarification Needed",
	NoteTypeExclusion:     "Exclusion Reason",
	NoteTypeOther:         "Other",
}

func (n NoteType) Valid() bool {
	_, ok := noteTypeLabels[n]
	return ok
}

func (n NoteType) Label() string {
	return labelOr(noteTypeLabels[n], string(n))
}

// Provinces lists every province code in display order.
func Provinces() []Province {
	return []Province{
		ProvinceAlberta, ProvinceBritishColumbia, ProvinceManitoba, ProvinceNewBrunswick,
		ProvinceNewfoundlandAndLabrador, ProvinceNovaScotia, ProvinceOntario,
		ProvincePrinceEdwardIsland, ProvinceQuebec, ProvinceSaskatchewan,
		ProvinceNorthwestTerritories, ProvinceNunavut, ProvinceYukon, ProvinceNational,
	}
}

// AgeGroups lists every age group in display order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroupPreschool, AgeGroupSchoolAge, AgeGroupAdolescent, AgeGroupAdult, AgeGroupElderly, AgeGroupMixed}
}

// CariesIndices lists every caries index in display order.
func CariesIndices() []CariesIndex {
	return []CariesIndex{
		CariesIndexDeciduousTeeth, CariesIndexDeciduousSurfaces, CariesIndexPermanentTeeth,
		CariesIndexPermanentSurfaces, CariesIndexMixedDentition, CariesIndexOther,
	}
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
