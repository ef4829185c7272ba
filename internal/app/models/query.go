package models

import (
	"strings"

	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// DefaultStudySort is applied when a listing names no sort key.
const DefaultStudySort = "-publication_year"

// sortableStudyFields are the study columns a listing may be ordered by.
var sortableStudyFields = map[string]bool{
	"study_id":              true,
	"title":                 true,
	"authors":               true,
	"journal":               true,
	"publication_year":      true,
	"study_design":          true,
	"study_setting":         true,
	"province":              true,
	"city_region":           true,
	"sample_size":           true,
	"age_group":             true,
	"age_min":               true,
	"age_max":               true,
	"data_collection_start": true,
	"data_collection_end":   true,
	"caries_index_used":     true,
	"examination_criteria":  true,
	"quality_score":         true,
	"risk_of_bias":          true,
	"extracted_by":          true,
	"extraction_date":       true,
	"verified_by":           true,
	"verification_date":     true,
	"created_at":            true,
	"updated_at":            true,
}

// StudySort is a validated ordering for study listings.
type StudySort struct {
	Field string
	Desc  bool
}

// String renders the sort in its query-parameter form.
func (s StudySort) String() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// ParseStudySort accepts "field" or "-field" for an allow-listed field. An
// empty value yields the default ordering.
func ParseStudySort(raw string) (StudySort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultStudySort
	}
	sort := StudySort{Field: raw}
	if strings.HasPrefix(raw, "-") {
		sort = StudySort{Field: raw[1:], Desc: true}
	}
	if !sortableStudyFields[sort.Field] {
		return StudySort{}, apperrors.NewValidationError("sort", raw+" is not a sortable field")
	}
	return sort, nil
}

// StudyFilter narrows a study listing. Nil fields impose no constraint.
type StudyFilter struct {
	Province    *Province
	AgeGroup    *AgeGroup
	CariesIndex *CariesIndex
	YearFrom    *int
	YearTo      *int
}

// StudyPage is one page of a study listing.
type StudyPage struct {
	Studies []Study
	Total   int64
	Page    int
	Size    int
}

// FilterOptions lists the values present in the catalog for the listing sidebar.
type FilterOptions struct {
	Provinces     []Province    `json:"provinces"`
	AgeGroups     []AgeGroup    `json:"age_groups"`
	CariesIndices []CariesIndex `json:"caries_indices"`
	MinYear       *int          `json:"min_year"`
	MaxYear       *int          `json:"max_year"`
}

// StudyDetail is a study with its child records and related studies.
type StudyDetail struct {
	Study      Study
	DataPoints []CariesDataPoint
	Notes      []ExtractionNote
	Related    []Study
}
