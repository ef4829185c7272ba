package dto

import (
	"strconv"
	"strings"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// StudyQuery holds the listing query parameters. Blank values impose no
// constraint.
type StudyQuery struct {
	Province    string `form:"province" example:"ON"`
	AgeGroup    string `form:"age_group" example:"school_age"`
	CariesIndex string `form:"caries_index" example:"DMFT"`
	YearFrom    string `form:"year_from" example:"2000"`
	YearTo      string `form:"year_to" example:"2020"`
	Sort        string `form:"sort" example:"-publication_year"`
}

// ToFilter validates the query. Every malformed parameter is reported under
// its own name.
func (q *StudyQuery) ToFilter() (models.StudyFilter, models.StudySort, error) {
	var (
		filter models.StudyFilter
		vErr   = &apperrors.ValidationError{}
	)

	if v := strings.TrimSpace(q.Province); v != "" {
		p := models.Province(v)
		if p.Valid() {
			filter.Province = &p
		} else {
			vErr.Add("province", v+" is not a valid choice")
		}
	}
	if v := strings.TrimSpace(q.AgeGroup); v != "" {
		a := models.AgeGroup(v)
		if a.Valid() {
			filter.AgeGroup = &a
		} else {
			vErr.Add("age_group", v+" is not a valid choice")
		}
	}
	if v := strings.TrimSpace(q.CariesIndex); v != "" {
		c := models.CariesIndex(v)
		if c.Valid() {
			filter.CariesIndex = &c
		} else {
			vErr.Add("caries_index", v+" is not a valid choice")
		}
	}
	filter.YearFrom = parseYear(vErr, "year_from", q.YearFrom)
	filter.YearTo = parseYear(vErr, "year_to", q.YearTo)

	sort, err := models.ParseStudySort(q.Sort)
	if err != nil {
		if sErr, ok := apperrors.AsValidationError(err); ok {
			vErr.Violations = append(vErr.Violations, sErr.Violations...)
		}
	}

	if vErr.HasViolations() {
		return models.StudyFilter{}, models.StudySort{}, vErr
	}
	return filter, sort, nil
}

func parseYear(vErr *apperrors.ValidationError, field, raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		vErr.Add(field, "must be a whole year")
		return nil
	}
	return &year
}
