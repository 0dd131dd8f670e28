package mood

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/zhouzirui/mood-mirror/backend/internal/analysis/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	moodmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
	moodservice "github.com/zhouzirui/mood-mirror/backend/internal/service/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/store/memory"
)

func setupRouter() *chi.Mux {
	rnd := random.New(42)
	svc := moodservice.NewService(nil, analysis.NewClassifier(rnd), catalog.NewSeededRecommender(rnd), memory.New(), nil)

	r := chi.NewRouter()
	New(svc, nil).RegisterRoutes(r)
	return r
}

func postMood(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mood", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeTiredWithRemoteDisabled(t *testing.T) {
	r := setupRouter()

	resp := postMood(t, r, `{"method":"self","data":"I feel so tired today"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result moodservice.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, moodmodel.Tired, result.Mood)
	assert.Equal(t, "Restorative Yoga", result.Recommendations.Workout)
	assert.Equal(t, "Warm Tea & Soup", result.Recommendations.Food)
	assert.Equal(t, moodmodel.EnergyLow, result.Energy)
	assert.Equal(t, moodmodel.IntentRelax, result.Intent)
	assert.Equal(t, moodservice.SourceHeuristic, result.Source)
	assert.NotEmpty(t, result.Games)
}

func TestAnalyzeWithoutDataReturnsWeakCalm(t *testing.T) {
	r := setupRouter()

	resp := postMood(t, r, `{"method":"self"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "calm", body["mood"])
	assert.Equal(t, 0.60, body["confidence"])
}

func TestAnalyzeFaceWithoutData(t *testing.T) {
	r := setupRouter()

	resp := postMood(t, r, `{"method":"face"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var result moodservice.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	_, ok := moodmodel.Parse(string(result.Mood))
	assert.True(t, ok, "unexpected mood %q", result.Mood)
}

func TestAnalyzeValidation(t *testing.T) {
	r := setupRouter()

	cases := map[string]string{
		"missing method": `{}`,
		"unknown method": `{"method":"voice"}`,
		"data not text":  `{"method":"self","data":42}`,
		"data null":      `{"method":"face","data":null}`,
		"broken json":    `{"method":`,
		"empty body":     ``,
	}

	for name, body := range cases {
		resp := postMood(t, r, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, resp.Code)
		}
		var payload map[string]string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload), name)
		assert.NotEmpty(t, payload["message"], name)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	r := setupRouter()

	postMood(t, r, `{"method":"self","data":"so happy"}`)
	postMood(t, r, `{"method":"self","data":"so worried"}`)

	req := httptest.NewRequest(http.MethodGet, "/mood/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var logs []moodmodel.LogRecord
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, moodmodel.Anxious, logs[0].Mood)
	require.NotNil(t, logs[0].InputData)
	assert.Equal(t, "so worried", *logs[0].InputData)
	assert.Equal(t, moodmodel.Happy, logs[1].Mood)

	req = httptest.NewRequest(http.MethodGet, "/mood/history?limit=1", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &logs))
	assert.Len(t, logs, 1)
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	r := setupRouter()

	for _, q := range []string{"0", "-3", "ten"} {
		req := httptest.NewRequest(http.MethodGet, "/mood/history?limit="+q, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusBadRequest, resp.Code, q)
	}
}

func TestHistoryEmptyIsArray(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/mood/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}
