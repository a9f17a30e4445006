package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/common/config"
	"skillmatch/internal/common/logger"
	"skillmatch/internal/genai"
	"skillmatch/internal/history"
	"skillmatch/internal/match"
	"skillmatch/internal/quota"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	log := logger.NewTestLogger(t)
	plans := map[string]config.PlanConfig{
		"free":    {AnalyzeLimit: 2, SuggestLimit: 2, GenerateLimit: 0},
		"starter": {AnalyzeLimit: 25, SuggestLimit: 25, GenerateLimit: 5},
	}

	srv := New(
		match.NewEngine(log, nil),
		quota.NewGate(quota.NewMemoryStore(), plans, log),
		genai.NewResumeWriter(nil, log),
		nil,
		history.NewService(nil, nil, log),
		config.ServerConfig{},
		log,
	)

	mux := http.NewServeMux()
	srv.Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func analyzeBody(plan, session string) map[string]interface{} {
	return map[string]interface{}{
		"sessionId": session,
		"plan":      plan,
		"industry":  "Technology",
		"role":      "Senior Backend Engineer",
		"skills":    "Python, SQL, API design, Docker",
	}
}

func TestHandleAnalyze(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/v1/analyze", analyzeBody("starter", "s-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var a match.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, "backend", string(a.Track))
	assert.NotEmpty(t, a.ID)
	assert.Empty(t, a.Gaps.MissingCritical)
}

func TestHandleAnalyze_MissingFields(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/v1/analyze", map[string]interface{}{
		"sessionId": "s-1",
		"plan":      "starter",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body.Code)
}

func TestHandleAnalyze_UnknownField(t *testing.T) {
	mux := newTestMux(t)

	body := analyzeBody("starter", "s-1")
	body["surprise"] = true
	rec := postJSON(t, mux, "/v1/analyze", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAnalyze_QuotaLimitReached(t *testing.T) {
	mux := newTestMux(t)

	for i := 0; i < 2; i++ {
		rec := postJSON(t, mux, "/v1/analyze", analyzeBody("free", "s-quota"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := postJSON(t, mux, "/v1/analyze", analyzeBody("free", "s-quota"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "QUOTA_LIMIT_REACHED", body.Code)

	// A different session still has budget.
	rec = postJSON(t, mux, "/v1/analyze", analyzeBody("free", "s-other"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSuggest(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/v1/suggest", analyzeBody("starter", "s-2"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body suggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Analysis)
	assert.NotEmpty(t, body.Suggestions.KeywordBank)
	assert.Len(t, body.Suggestions.PortfolioProjectIdeas, 3)
}

func TestHandleResume_FallbackWithoutGenerator(t *testing.T) {
	mux := newTestMux(t)

	body := analyzeBody("starter", "s-3")
	body["profile"] = map[string]interface{}{
		"name":    "Dana Smith",
		"summary": "Builds resilient services.",
	}
	rec := postJSON(t, mux, "/v1/resume", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, genai.SourceFallback, resp.Resume.Source)
	assert.Contains(t, resp.Resume.Text, "DANA SMITH")
	assert.False(t, resp.Emailed)
}

func TestHandleResume_FeatureNotInPlan(t *testing.T) {
	mux := newTestMux(t)

	body := analyzeBody("free", "s-4")
	body["profile"] = map[string]interface{}{"name": "Dana Smith"}
	rec := postJSON(t, mux, "/v1/resume", body)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "FEATURE_NOT_IN_PLAN", resp.Code)
}

func TestHandleExtract_PlainText(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/extract", bytes.NewReader([]byte("Python, SQL, Kubernetes")))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Python, SQL, Kubernetes", resp.Text)
	assert.Contains(t, resp.Skills, "python")
	assert.Contains(t, resp.Skills, "kubernetes")
}

func TestHandleExtract_UnsupportedType(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/extract", bytes.NewReader([]byte("blob")))
	req.Header.Set("Content-Type", "application/msword")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleQuota(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/v1/analyze", analyzeBody("free", "s-5"))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/quota?plan=%s&sessionId=%s", "free", "s-5"), nil)
	qrec := httptest.NewRecorder()
	mux.ServeHTTP(qrec, req)

	require.Equal(t, http.StatusOK, qrec.Code)

	var status quota.Status
	require.NoError(t, json.Unmarshal(qrec.Body.Bytes(), &status))
	assert.Equal(t, "free", status.Plan)
	assert.Equal(t, 1, status.Usage["analyze"])
	assert.Equal(t, 2, status.Limits["analyze"])
	assert.Equal(t, 0, status.Limits["generate"])
}

func TestHandleQuota_MissingParams(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/quota", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleHistory_EmptyWithoutBackends(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/history?sessionId=s-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records []history.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
}
