package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/cariesreview/catalog/internal/app/auth"
	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/middleware"
	"github.com/cariesreview/catalog/internal/pkg/auth"
	"github.com/cariesreview/catalog/internal/web"
)

type testEnv struct {
	router  *gin.Engine
	catalog *fakeCatalog
	stats   *fakeStats
	admin   *fakeStudyAdmin
	points  *fakeCariesData
	notes   *fakeNotes
	tokens  *auth.JWTService
	pinger  *fakePinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterBindingValidator()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	env := &testEnv{
		catalog: &fakeCatalog{studies: []models.Study{sampleStudy("ON-2014-001")}},
		stats:   &fakeStats{},
		admin:   &fakeStudyAdmin{studies: map[string]*models.Study{}},
		points:  &fakeCariesData{points: map[int64]*models.CariesDataPoint{}},
		notes:   &fakeNotes{},
		tokens:  auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"}),
		pinger:  &fakePinger{},
	}
	existing := sampleStudy("ON-2014-001")
	env.admin.studies[existing.StudyID] = &existing

	pages := NewPageController(env.catalog, env.stats)
	charts := NewChartController(env.stats)
	catalog := NewCatalogController(env.catalog, env.stats)
	health := NewHealthController(env.pinger)
	authController := NewAuthController(fakeAuth{})
	studies := NewStudyAdminController(env.catalog, env.admin)
	points := NewCariesDataController(env.points)
	notes := NewExtractionNoteController(env.notes)
	project := NewProjectMetadataController(fakeProject{})
	authMiddleware := middleware.NewAuthMiddleware(env.tokens)

	r := gin.New()
	r.HTMLRender = renderer
	r.GET("/", pages.Home)
	r.GET("/studies/", pages.StudyList)
	r.GET("/studies/search/", pages.StudySearch)
	r.GET("/studies/:study_id/", pages.StudyDetail)
	r.GET("/dashboard/", pages.Dashboard)
	r.GET("/analytics/", pages.Analytics)
	r.GET("/trends/", pages.Trends)
	r.GET("/about/", pages.About)
	r.NoRoute(pages.NotFound)

	r.GET("/api/caries-by-province/", charts.CariesByProvince)
	r.GET("/api/caries-by-age/", charts.CariesByAge)
	r.GET("/api/temporal-trends/", charts.TemporalTrends)

	v1 := r.Group("/api/v1")
	v1.GET("/health", health.Health)
	v1.GET("/studies", catalog.ListStudies)
	v1.GET("/studies/search", catalog.SearchStudies)
	v1.GET("/studies/:studyId", catalog.GetStudy)
	v1.GET("/stats/trends", catalog.Trends)
	v1.GET("/project", catalog.Project)
	v1.POST("/auth/login", authController.Login)

	admin := v1.Group("/admin", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(appauth.PermEditCatalog))
	admin.GET("/me", authController.Me)
	admin.GET("/studies", studies.ListStudies)
	admin.POST("/studies", studies.CreateStudy)
	admin.GET("/studies/:studyId", studies.GetStudy)
	admin.PUT("/studies/:studyId", studies.UpdateStudy)
	admin.DELETE("/studies/:studyId", studies.DeleteStudy)
	admin.POST("/studies/:studyId/verify", authMiddleware.RoleRequired(appauth.PermVerifyStudies), studies.VerifyStudy)
	admin.GET("/studies/:studyId/caries-data", points.ListForStudy)
	admin.POST("/studies/:studyId/caries-data", points.Create)
	admin.POST("/studies/:studyId/notes", notes.Create)
	admin.GET("/caries-data/:id", points.Get)
	admin.PUT("/caries-data/:id", points.Update)
	admin.DELETE("/caries-data/:id", points.Delete)
	admin.GET("/notes/:id", notes.Get)
	admin.GET("/project-metadata", project.List)
	admin.POST("/project-metadata", project.Create)
	admin.GET("/project-metadata/:id", project.Get)

	env.router = r
	return env
}

func (e *testEnv) token(t *testing.T, role models.EditorRole) string {
	t.Helper()
	token, _, err := e.tokens.GenerateToken(models.Editor{Username: "mtremblay", Name: "Dr. M. Tremblay", Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func validStudyBody(studyID string) map[string]any {
	return map[string]any{
		"study_id": studyID, "title": "Caries in Halifax", "authors": "Doe J",
		"publication_year": 2019, "study_design": "cross_sectional", "study_setting": "school",
		"province": "NS", "sample_size": 400, "age_group": "school_age", "age_min": 6, "age_max": 12,
		"data_collection_start": "2017-09-01", "data_collection_end": "2018-06-30",
		"caries_index_used": "DMFT", "examination_criteria": "who_2013",
	}
}

// --- HTML pages ---

func TestHomePage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "1,234")
	assert.Contains(t, w.Body.String(), "/studies/ON-2014-001/")
}

func TestStudyListPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/studies/?province=ON&sort=-sample_size&page=2", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.catalog.lastFilter.Province)
	assert.Equal(t, models.ProvinceOntario, *env.catalog.lastFilter.Province)
	assert.Equal(t, models.StudySort{Field: "sample_size", Desc: true}, env.catalog.lastSort)
	assert.Equal(t, 2, env.catalog.lastPage)
}

func TestStudyListPageRejectsUnknownSort(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/studies/?sort=password", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sort")
}

func TestStudySearchPageBlankQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/studies/search/?q=", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a word or phrase")

	w = env.do(http.MethodGet, "/studies/search/?q=caries", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "caries", env.catalog.lastQuery)
	assert.Contains(t, w.Body.String(), "ON-2014-001")
	w = env.do(http.MethodGet, "/studies/search/?q=%20caries%20", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, " caries ", env.catalog.lastQuery)
}

func TestStudyDetailPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/studies/ON-2014-001/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dental caries among schoolchildren")

	missing := env.do(http.MethodGet, "/studies/XX-0000/", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "study not found")
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/nowhere/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestPagesRenderServerErrorsWithoutDetails(t *testing.T) {
	env := newTestEnv(t)
	env.stats.err = errDatabaseDown

	w := env.do(http.MethodGet, "/dashboard/", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAboutPageWithoutProject(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/about/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "have not been recorded")
}

func TestStaticPages(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/analytics/", "/trends/"} {
		w := env.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Contains(t, env.do(http.MethodGet, "/analytics/", "", nil).Body.String(), PlannedAnalyses[0])
}

// --- Chart API ---

func TestChartsReturnBareDataPayload(t *testing.T) {
	env := newTestEnv(t)
	env.stats.provinces = []models.ProvinceCaries{{Province: models.ProvinceOntario, AvgPrevalence: 45, AvgDMFT: 3, StudyCount: 2, TotalParticipants: 300}}

	w := env.do(http.MethodGet, "/api/caries-by-province/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Len(t, body["data"], 1)
	row := body["data"][0]
	assert.Equal(t, "ON", row["province"])
	assert.Equal(t, 45.0, row["avg_prevalence"])
	assert.Equal(t, 3.0, row["avg_dmft"])
	assert.Equal(t, 2.0, row["study_count"])
	assert.Equal(t, 300.0, row["total_participants"])
}

func TestChartsEmptyCatalog(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/caries-by-age/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": []}`, w.Body.String())

	trends := env.do(http.MethodGet, "/api/temporal-trends/", "", nil)
	assert.JSONEq(t, `{"data": [{"decade": 2010, "avg_prevalence": 40, "avg_dmft": 1.5, "study_count": 2}]}`, trends.Body.String())
}

// --- Public JSON API ---

func TestListStudiesAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/studies?year_from=2000", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), `"total_items":1`)
	require.NotNil(t, env.catalog.lastFilter.YearFrom)
	assert.Equal(t, 2000, *env.catalog.lastFilter.YearFrom)
}

func TestListStudiesAPIValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/studies?province=XX", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.NotNil(t, body.Error)
	assert.Equal(t, "province", body.Error.Field)
}

func TestGetStudyAPINotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/studies/XX-0000", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", decode(t, w).Error.Code)
}

func TestProjectAPINotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/project", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env.pinger.err = errDatabaseDown
	w = env.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable")
}

// --- Auth ---

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "mtremblay", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"token_type":"Bearer"`)

	bad := env.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "mtremblay", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	missing := env.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "mtremblay"})
	require.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, "password", decode(t, missing).Error.Field)
}

func TestAdminRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/v1/admin/studies", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/v1/admin/studies", "garbage", nil).Code)

	w := env.do(http.MethodGet, "/api/v1/admin/me", env.token(t, models.RoleExtractor), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"role":"extractor"`)
}

// --- Study admin ---

func TestCreateStudyDefaultsExtractedBy(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/studies", env.token(t, models.RoleExtractor), validStudyBody("NS-2017-010"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data), `"extracted_by":"Dr. M. Tremblay"`)
	assert.Equal(t, "mtremblay", env.admin.lastEditor.Username)
}

func TestCreateStudyDuplicate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/studies", env.token(t, models.RoleExtractor), validStudyBody("ON-2014-001"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "study_id", decode(t, w).Error.Field)
}

func TestCreateStudyRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, models.RoleExtractor)

	w := env.do(http.MethodPost, "/api/v1/admin/studies", token, `{"study_id": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := validStudyBody("NS-2017-011")
	body["sample_size"] = "many"
	w = env.do(http.MethodPost, "/api/v1/admin/studies", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "sample_size", decode(t, w).Error.Field)
}

func TestUpdateAndDeleteStudy(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, models.RoleExtractor)

	w := env.do(http.MethodPut, "/api/v1/admin/studies/ON-2014-001", token, validStudyBody("ON-2014-001"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/admin/studies/ON-2014-001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/admin/studies/ON-2014-001", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyStudyRequiresVerifier(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/verify", env.token(t, models.RoleExtractor), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/verify", env.token(t, models.RoleVerifier), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"verified_by":"Dr. M. Tremblay"`)
}

// --- Child records ---

func TestCariesDataEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, models.RoleExtractor)
	point := map[string]any{"sex": "female", "age_category": "12 years", "sample_size_group": 120, "caries_prevalence": 42.5, "mean_dmft": 1.8}

	w := env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/caries-data", token, point)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/v1/admin/caries-data/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/admin/caries-data/abc", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decode(t, w).Error.Field)

	w = env.do(http.MethodPost, "/api/v1/admin/studies/XX-0000/caries-data", token, point)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/v1/admin/studies/ON-2014-001/caries-data", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))

	w = env.do(http.MethodDelete, "/api/v1/admin/caries-data/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodGet, "/api/v1/admin/caries-data/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCariesDataRejectsMissingMeasurements(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, models.RoleExtractor)

	w := env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/caries-data", token,
		map[string]any{"sex": "female", "age_category": "12 years", "sample_size_group": 10, "caries_prevalence": 12.5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "mean_dmft", decode(t, w).Error.Field)
	assert.Empty(t, env.points.points)

	w = env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/caries-data", token,
		map[string]any{"sex": "female", "age_category": "12 years", "sample_size_group": 10, "caries_prevalence": 0, "mean_dmft": 0})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateStudyRequiresAges(t *testing.T) {
	env := newTestEnv(t)
	body := validStudyBody("NS-2017-012")
	delete(body, "age_min")

	w := env.do(http.MethodPost, "/api/v1/admin/studies", env.token(t, models.RoleExtractor), body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "age_min", decode(t, w).Error.Field)
}

func TestCreateNoteDefaultsCreatedBy(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/studies/ON-2014-001/notes", env.token(t, models.RoleExtractor),
		map[string]string{"note_type": "quality", "note_text": "Response rate below 60%"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data), `"created_by":"Dr. M. Tremblay"`)

	missing := env.do(http.MethodGet, "/api/v1/admin/notes/9", env.token(t, models.RoleExtractor), nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestProjectMetadataEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, models.RoleVerifier)

	w := env.do(http.MethodGet, "/api/v1/admin/project-metadata", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(string(decode(t, w).Data), "["))

	w = env.do(http.MethodPost, "/api/v1/admin/project-metadata", token, map[string]any{
		"search_start_date": "1990-01-01", "search_end_date": "2025-06-30",
		"databases_searched": []string{"MEDLINE"}, "inclusion_criteria": "Canadian", "exclusion_criteria": "Reviews",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data), models.DefaultAnalysisSoftware)

	w = env.do(http.MethodGet, "/api/v1/admin/project-metadata/7", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
