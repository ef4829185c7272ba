package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

func TestCariesDataServiceCreateAndList(t *testing.T) {
	studies := newFakeStudyStore(validStudy("ON-2014-001"))
	points := newFakeCariesDataStore()
	svc := NewCariesDataService(points, studies)
	ctx := context.Background()

	req := dataPointRequest(models.SexFemale, " 12 years ")
	p, err := svc.Create(ctx, "ON-2014-001", &req)
	require.NoError(t, err)
	assert.Equal(t, "12 years", p.AgeCategory)
	assert.Equal(t, studies.studies["ON-2014-001"].ID, p.StudyID)

	_, err = svc.Create(ctx, "ON-2014-001", &req)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "age_category", vErr.Field())

	list, err := svc.ListForStudy(ctx, "ON-2014-001")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCariesDataServiceCreateUnknownStudy(t *testing.T) {
	svc := NewCariesDataService(newFakeCariesDataStore(), newFakeStudyStore())

	req := dataPointRequest(models.SexFemale, "12 years")
	_, err := svc.Create(context.Background(), "missing", &req)
	assert.ErrorIs(t, err, apperrors.ErrStudyNotFound)
}

func TestCariesDataServiceValidates(t *testing.T) {
	svc := NewCariesDataService(newFakeCariesDataStore(), newFakeStudyStore(validStudy("ON-2014-001")))

	req := dataPointRequest(models.Sex("unknown"), "12 years")
	req.SampleSizeGroup = 0
	_, err := svc.Create(context.Background(), "ON-2014-001", &req)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Len(t, vErr.Violations, 2)
}

func TestCariesDataServiceUpdateKeepsStudy(t *testing.T) {
	points := newFakeCariesDataStore()
	svc := NewCariesDataService(points, newFakeStudyStore(validStudy("ON-2014-001")))
	ctx := context.Background()

	req := dataPointRequest(models.SexFemale, "12 years")
	created, err := svc.Create(ctx, "ON-2014-001", &req)
	require.NoError(t, err)

	req.MeanDMFT = ptr(2.25)
	updated, err := svc.Update(ctx, created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, created.StudyID, updated.StudyID)
	assert.Equal(t, 2.25, points.points[created.ID].MeanDMFT)

	_, err = svc.Update(ctx, 99, &req)
	assert.ErrorIs(t, err, apperrors.ErrCariesDataNotFound)
}

func TestExtractionNoteServiceDefaultsAuthor(t *testing.T) {
	notes := newFakeNoteStore()
	svc := NewExtractionNoteService(notes, newFakeStudyStore(validStudy("ON-2014-001")))
	ctx := context.Background()

	n, err := svc.Create(ctx, verifier, "ON-2014-001", &dto.ExtractionNoteRequest{NoteType: models.NoteTypeQuality, NoteText: "Low response rate"})
	require.NoError(t, err)
	assert.Equal(t, "B. Verifier", n.CreatedBy)

	n, err = svc.Create(ctx, verifier, "ON-2014-001", &dto.ExtractionNoteRequest{NoteType: models.NoteTypeOther, NoteText: "x", CreatedBy: "Someone Else"})
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", n.CreatedBy)

	_, err = svc.Create(ctx, verifier, "ON-2014-001", &dto.ExtractionNoteRequest{NoteType: models.NoteTypeOther, NoteText: "   "})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "note_text", vErr.Field())

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), apperrors.ErrExtractionNoteNotFound)
}

func projectRequest() *dto.ProjectMetadataRequest {
	return &dto.ProjectMetadataRequest{
		SearchStartDate:   "1990-01-01",
		SearchEndDate:     "2025-01-31",
		DatabasesSearched: []string{"MEDLINE", " Embase "},
		InclusionCriteria: "Canadian populations",
		ExclusionCriteria: "Non-primary studies",
	}
}

func TestProjectMetadataServiceAppliesDefaults(t *testing.T) {
	svc := NewProjectMetadataService(&fakeProjectStore{})

	m, err := svc.Create(context.Background(), projectRequest())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProjectName, m.ProjectName)
	assert.Equal(t, models.DefaultProtocolVersion, m.ProtocolVersion)
	assert.Equal(t, models.DefaultAnalysisSoftware, m.AnalysisSoftware)
	assert.Equal(t, []string{"MEDLINE", "Embase"}, m.DatabasesSearched)
}

func TestProjectMetadataServiceRequiresDatabases(t *testing.T) {
	svc := NewProjectMetadataService(&fakeProjectStore{})

	req := projectRequest()
	req.DatabasesSearched = nil
	_, err := svc.Create(context.Background(), req)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "databases_searched", vErr.Field())
}

func TestProjectMetadataServiceUpdate(t *testing.T) {
	store := &fakeProjectStore{}
	svc := NewProjectMetadataService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, projectRequest())
	require.NoError(t, err)

	req := projectRequest()
	req.ProtocolVersion = "2.0"
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "2.0", updated.ProtocolVersion)

	_, err = svc.Update(ctx, 42, req)
	assert.ErrorIs(t, err, apperrors.ErrProjectMetadataNotFound)
}

func TestProjectMetadataServiceEnsureDefault(t *testing.T) {
	store := &fakeProjectStore{}
	svc := NewProjectMetadataService(store)
	ctx := context.Background()

	defaults, err := projectRequest().ToModel()
	require.NoError(t, err)

	created, err := svc.EnsureDefault(ctx, defaults)
	require.NoError(t, err)
	assert.True(t, created)

	again, err := projectRequest().ToModel()
	require.NoError(t, err)
	created, err = svc.EnsureDefault(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, store.records, 1)
}
