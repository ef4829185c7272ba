// Package seed inserts the records a fresh catalog starts with.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// Editor is recorded as extractor of the demo studies.
var Editor = models.Editor{Username: "seed", Name: "Catalog Seed", Role: models.RoleExtractor}

// DefaultProjectMetadata is the protocol record created when none exists.
func DefaultProjectMetadata() *models.ProjectMetadata {
	return &models.ProjectMetadata{
		SearchStartDate:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		SearchEndDate:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		DatabasesSearched: []string{"MEDLINE", "Embase", "CINAHL", "Web of Science"},
		InclusionCriteria: "Primary observational studies reporting caries prevalence or DMFT/dmft in Canadian populations.",
		ExclusionCriteria: "Reviews, case reports, studies without extractable prevalence or index data.",
	}
}

// CreateDefaultData creates the default project metadata if none exists.
func CreateDefaultData(ctx context.Context, project services.ProjectMetadataService, lgr zerolog.Logger) error {
	created, err := project.EnsureDefault(ctx, DefaultProjectMetadata())
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default project metadata")
		return err
	}
	if created {
		lgr.Info().Msg("Default project metadata created")
	} else {
		lgr.Debug().Msg("Project metadata already present")
	}
	return nil
}

// CreateDemoStudies inserts the demo studies that are not yet in the
// catalog and returns how many were added.
func CreateDemoStudies(ctx context.Context, admin services.StudyAdminService, lgr zerolog.Logger) (int, error) {
	var (
		added    int
		finalErr error
	)
	for _, req := range DemoStudies() {
		_, err := admin.CreateStudy(ctx, Editor, &req)
		switch {
		case err == nil:
			added++
		case isDuplicateStudy(err):
			lgr.Debug().Str("study_id", req.StudyID).Msg("Demo study already present")
		default:
			lgr.Error().Err(err).Str("study_id", req.StudyID).Msg("Error creating demo study")
			finalErr = errors.Join(finalErr, err)
		}
	}
	lgr.Info().Int("added", added).Msg("Demo studies seeded")
	return added, finalErr
}

func isDuplicateStudy(err error) bool {
	vErr, ok := apperrors.AsValidationError(err)
	return ok && vErr.Field() == "study_id"
}

func ptr[T any](v T) *T { return &v }

// DemoStudies returns a small illustrative catalog spread over provinces,
// age groups and decades.
func DemoStudies() []dto.StudyRequest {
	return []dto.StudyRequest{
		{
			StudyID:             "ON-2014-001",
			Title:               "Dental caries among schoolchildren in Toronto",
			Authors:             "Smith J, Tremblay M",
			Journal:             ptr("Canadian Journal of Public Health"),
			PublicationYear:     2016,
			DOI:                 ptr("10.17269/cjph.107.5301"),
			StudyDesign:         models.StudyDesignCrossSectional,
			StudySetting:        models.StudySettingSchool,
			Province:            models.ProvinceOntario,
			CityRegion:          ptr("Toronto"),
			SampleSize:          1200,
			AgeGroup:            models.AgeGroupSchoolAge,
			AgeMin:              ptr(6.0),
			AgeMax:              ptr(12.0),
			DataCollectionStart: "2014-09-01",
			DataCollectionEnd:   "2015-06-30",
			CariesIndexUsed:     models.CariesIndexPermanentTeeth,
			ExaminationCriteria: models.ExaminationWHO2013,
			QualityScore:        ptr(7),
			RiskOfBias:          ptr(models.RiskOfBiasLow),
			CariesData: []dto.CariesDataRequest{
				{Sex: models.SexFemale, AgeCategory: "12 years", SampleSizeGroup: 310, CariesPrevalence: ptr(41.5), MeanDMFT: ptr(1.7)},
				{Sex: models.SexMale, AgeCategory: "12 years", SampleSizeGroup: 290, CariesPrevalence: ptr(44.2), MeanDMFT: ptr(1.9)},
			},
			ExtractionNotes: []dto.ExtractionNoteRequest{
				{NoteType: models.NoteTypeExtraction, NoteText: "Prevalence taken from Table 2."},
			},
		},
		{
			StudyID:             "QC-1998-002",
			Title:               "Early childhood caries in Montreal daycare centres",
			Authors:             "Gagnon L, Roy P",
			Journal:             ptr("Journal of the Canadian Dental Association"),
			PublicationYear:     2000,
			StudyDesign:         models.StudyDesignCrossSectional,
			StudySetting:        models.StudySettingCommunity,
			Province:            models.ProvinceQuebec,
			CityRegion:          ptr("Montreal"),
			SampleSize:          480,
			AgeGroup:            models.AgeGroupPreschool,
			AgeMin:              ptr(2.0),
			AgeMax:              ptr(5.0),
			DataCollectionStart: "1998-01-15",
			DataCollectionEnd:   "1998-11-30",
			CariesIndexUsed:     models.CariesIndexDeciduousTeeth,
			ExaminationCriteria: models.ExaminationWHO1997,
			QualityScore:        ptr(5),
			RiskOfBias:          ptr(models.RiskOfBiasModerate),
			CariesData: []dto.CariesDataRequest{
				{Sex: models.SexMixed, AgeCategory: "3-5 years", SampleSizeGroup: 480, CariesPrevalence: ptr(32.0), MeanDMFT: ptr(1.2)},
			},
		},
		{
			StudyID:             "NU-2009-003",
			Title:               "Oral health of Inuit adolescents in Nunavut",
			Authors:             "Kilabuk A, Morris R",
			PublicationYear:     2011,
			StudyDesign:         models.StudyDesignCrossSectional,
			StudySetting:        models.StudySettingPopulation,
			Province:            models.ProvinceNunavut,
			SampleSize:          260,
			AgeGroup:            models.AgeGroupAdolescent,
			AgeMin:              ptr(13.0),
			AgeMax:              ptr(17.0),
			DataCollectionStart: "2008-03-01",
			DataCollectionEnd:   "2009-02-28",
			CariesIndexUsed:     models.CariesIndexPermanentTeeth,
			ExaminationCriteria: models.ExaminationICDAS,
			RiskOfBias:          ptr(models.RiskOfBiasUnclear),
			CariesData: []dto.CariesDataRequest{
				{Sex: models.SexMixed, AgeCategory: "13-17 years", SampleSizeGroup: 260, CariesPrevalence: ptr(78.4), MeanDMFT: ptr(5.6)},
			},
		},
	}
}
