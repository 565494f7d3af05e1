package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/value-edge/internal/analysis"
	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/narrative"
	"github.com/yourusername/value-edge/internal/scoring"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	analyzer := analysis.NewAnalyzer(
		scoring.DefaultWeights(),
		analysis.Thresholds{MinExpectedValue: 0.05, MinConfidence: 0.60},
		0.25,
		narrative.Noop{},
		log,
	)

	srv := New(analyzer,
		&config.ServerConfig{Port: 0, TimeoutSeconds: 5},
		&config.MetricsConfig{Enabled: true, Path: "/metrics"},
		log,
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postAnalyze(t *testing.T, ts *httptest.Server, body map[string]string) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, map[string]string{
		"team1":        "Arsenal",
		"team2":        "Chelsea",
		"team1_odds":   "3.0",
		"team2_odds":   "2.5",
		"draw_odds":    "3.5",
		"team1_form":   "WWWWW",
		"team1_record": "20W-0L-0D",
		"team2_form":   "LLLLL",
		"head_to_head": "5-0-0",
		"home_team":    "Arsenal",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.MatchAnalysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, models.RecommendBetTeam1, result.Recommendation)
	assert.Len(t, result.Estimates, 3)
	assert.False(t, result.MarketFallback)
}

func TestAnalyzeEndpoint_FractionalAndAmericanOdds(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, map[string]string{
		"team1":      "Arsenal",
		"team2":      "Chelsea",
		"team1_odds": "5/2",
		"team2_odds": "-200",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.MatchAnalysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	// "5/2" is 3.5 decimal, "-200" is 1.5 decimal.
	assert.InDelta(t, 3.5, result.Input.Odds.Team1, 1e-9)
	assert.InDelta(t, 1.5, result.Input.Odds.Team2, 1e-9)
	assert.True(t, result.MarketFallback)
}

func TestAnalyzeEndpoint_ValidationViolationsReported(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, map[string]string{
		"team1":      "",
		"team2":      "Chelsea",
		"team1_odds": "0.5",
		"team2_odds": "1.8",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp struct {
		Error      string   `json:"error"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "invalid match input", errResp.Error)
	assert.Len(t, errResp.Violations, 2)
}

func TestAnalyzeEndpoint_UnparseableOdds(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, map[string]string{
		"team1":      "Arsenal",
		"team2":      "Chelsea",
		"team1_odds": "not odds",
		"team2_odds": "1.8",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeEndpoint_InvalidDrawOdds(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, map[string]string{
		"team1":      "Arsenal",
		"team2":      "Chelsea",
		"team1_odds": "2.5",
		"team2_odds": "1.8",
		"draw_odds":  "0.9",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/analyze")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAnalyzeEndpoint_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthzAndMetricsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "value_edge")
}
