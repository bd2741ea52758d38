package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/config"
	"github.com/gulfwise/finclinic/internal/insight"
	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	return New(config.ServerConfig{Port: 0}, catalog.MustDefault(), insight.MustDefaultMatrix(), st, 5)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func validRequest() assessmentRequest {
	answers := make(model.AnswerSet)
	for _, q := range catalog.MustDefault().Questions() {
		answers[q.ID] = 4
	}
	return assessmentRequest{
		Profile: model.Profile{
			IncomeBracket: model.Income20to30k,
			Nationality:   model.NationalityEmirati,
			Gender:        model.GenderFemale,
			Children:      2,
		},
		Answers: answers,
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, catalog.ActiveRevision, body["catalog_revision"])
}

func TestGetCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/catalog", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Revision  string            `json:"revision"`
		Questions []catalogQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, catalog.ActiveRevision, body.Revision)
	assert.Len(t, body.Questions, 15)
	assert.Len(t, body.Questions[0].Options, 5)
}

func TestGetCatalog_Arabic(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/catalog", nil,
		map[string]string{"Accept-Language": "ar-AE,ar;q=0.9,en;q=0.5"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []catalogQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	cat := catalog.MustDefault()
	want, _ := cat.QuestionByID(body.Questions[0].ID)
	assert.Equal(t, want.TextAr, body.Questions[0].Text)
}

func TestGetCatalog_ChildrenFilter(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/catalog?children=0", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []catalogQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Questions, 14)

	rec = doJSON(t, srv.Router(), http.MethodGet, "/v1/catalog?children=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAssessment(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/assessments", validRequest(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sub model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.NotEmpty(t, sub.ID)
	require.NotNil(t, sub.Result)
	assert.Equal(t, 80.0, sub.Result.Overall.Total)
	assert.Equal(t, model.BandExcellent, sub.Result.Overall.StatusBand)
	assert.Len(t, sub.Result.CategoryScores, 6)
	assert.NotEmpty(t, sub.Result.Insights)
}

func TestCreateAssessment_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAssessment_InvalidProfile(t *testing.T) {
	srv := newTestServer(t)

	body := validRequest()
	body.Profile.Nationality = "Martian"

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/assessments", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nationality")
}

func TestCreateAssessment_Violations(t *testing.T) {
	srv := newTestServer(t)

	body := validRequest()
	delete(body.Answers, "fc_q5")
	body.Answers["fc_q9"] = 7

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/assessments", body, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error      string `json:"error"`
		Violations []struct {
			QuestionID string `json:"question_id"`
			Code       string `json:"code"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Len(t, resp.Violations, 2)
}

func TestGetAssessment(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/v1/assessments", validRequest(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodGet, "/v1/assessments/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Result.Overall, got.Result.Overall)
}

func TestGetAssessment_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/assessments/does-not-exist", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssessments(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	for range 3 {
		rec := doJSON(t, router, http.MethodPost, "/v1/assessments", validRequest(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/v1/assessments", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Submissions []model.Submission `json:"submissions"`
		Count       int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Submissions, 3)

	// Band filter that matches nothing still returns a valid empty list.
	rec = doJSON(t, router, http.MethodGet, "/v1/assessments?band=At+Risk", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)

	rec = doJSON(t, router, http.MethodGet, "/v1/assessments?limit=-2", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	srv := New(config.ServerConfig{RatePerSec: 1, RateBurst: 2},
		catalog.MustDefault(), insight.MustDefaultMatrix(), st, 5)
	router := srv.Router()

	codes := make(map[int]int)
	for range 5 {
		rec := doJSON(t, router, http.MethodGet, "/health", nil, nil)
		codes[rec.Code]++
	}
	assert.Equal(t, 2, codes[http.StatusOK])
	assert.Equal(t, 3, codes[http.StatusTooManyRequests])
}

func TestNegotiateLang(t *testing.T) {
	tests := []struct {
		header string
		arabic bool
	}{
		{"", false},
		{"en-US", false},
		{"ar", true},
		{"ar-AE,en;q=0.8", true},
		{"fr-FR", false},
		{"garbage;;;", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		got := negotiateLang(req)
		if tt.arabic {
			assert.Equal(t, "ar", got.String(), tt.header)
		} else {
			assert.Equal(t, "en", got.String(), tt.header)
		}
	}
}
