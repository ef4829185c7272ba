package models

// Overview summarizes the whole catalog. Years are nil when it is empty.
type Overview struct {
	TotalStudies      int64 `json:"total_studies"`
	TotalParticipants int64 `json:"total_participants"`
	LatestYear        *int  `json:"latest_year"`
	EarliestYear      *int  `json:"earliest_year"`
}

// ProvinceCoverage counts studies and their participants in one province.
type ProvinceCoverage struct {
	Province          Province `json:"province"`
	StudyCount        int64    `json:"study_count"`
	TotalParticipants int64    `json:"total_participants"`
}

// CategoryCount is the number of studies carrying one category value.
type CategoryCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// QuickFacts are the headline numbers on the home page.
type QuickFacts struct {
	ProvincesCovered  int64   `json:"provinces_covered"`
	YearsSpan         int     `json:"years_span"`
	AverageSampleSize float64 `json:"avg_sample_size"`
}

// HomeSummary backs the home page.
type HomeSummary struct {
	Overview
	RecentStudies      []Study            `json:"recent_studies"`
	ProvincialCoverage []ProvinceCoverage `json:"provincial_coverage"`
	AgeGroupStats      []CategoryCount    `json:"age_group_stats"`
	IndexUsage         []CategoryCount    `json:"index_usage"`
	QuickFacts         QuickFacts         `json:"quick_facts"`
}

// ProvinceCaries aggregates data points by their study's province.
type ProvinceCaries struct {
	Province          Province `json:"province"`
	AvgPrevalence     float64  `json:"avg_prevalence"`
	AvgDMFT           float64  `json:"avg_dmft"`
	StudyCount        int64    `json:"study_count"`
	TotalParticipants int64    `json:"total_participants"`
}

// AgeCategoryCaries aggregates data points by age category label.
type AgeCategoryCaries struct {
	AgeCategory   string  `json:"age_category"`
	AvgPrevalence float64 `json:"avg_prevalence"`
	AvgDMFT       float64 `json:"avg_dmft"`
	Count         int64   `json:"count"`
}

// DecadeTrend aggregates data points by the decade their study started
// collecting data.
type DecadeTrend struct {
	Decade        int     `json:"decade"`
	AvgPrevalence float64 `json:"avg_prevalence"`
	AvgDMFT       float64 `json:"avg_dmft"`
	StudyCount    int64   `json:"study_count"`
}

// ProvinceSummary counts studies per province. AvgDMFT is nil when none of
// the province's studies report data points.
type ProvinceSummary struct {
	Province   Province `json:"province"`
	StudyCount int64    `json:"count"`
	AvgDMFT    *float64 `json:"avg_caries"`
}

// AgeGroupCaries aggregates data points by their study's age group.
type AgeGroupCaries struct {
	AgeGroup      AgeGroup `json:"age_group"`
	AvgPrevalence float64  `json:"avg_prevalence"`
	AvgDMFT       float64  `json:"avg_dmft"`
	StudyCount    int64    `json:"study_count"`
}

// Dashboard backs the dashboard page.
type Dashboard struct {
	TotalStudies      int64             `json:"total_studies"`
	TotalParticipants int64             `json:"total_participants"`
	Provinces         []ProvinceSummary `json:"provincial_data"`
	AgeGroups         []AgeGroupCaries  `json:"age_group_data"`
}

// YearTrend summarizes the studies published in one year. AvgDMFT is nil
// when none of them report data points.
type YearTrend struct {
	PublicationYear int      `json:"publication_year"`
	StudyCount      int64    `json:"study_count"`
	AvgSampleSize   float64  `json:"avg_sample_size"`
	AvgDMFT         *float64 `json:"avg_caries"`
}
