//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/value-edge/internal/analysis"
	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/narrative"
	"github.com/yourusername/value-edge/internal/scoring"
	"github.com/yourusername/value-edge/internal/server"
)

// TestFullAnalysisPipeline exercises the whole stack: the HTTP API, the
// scoring pipeline and a stubbed reasoning service behind the cached
// generator.
func TestFullAnalysisPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	narrativeCalls := 0
	reasoningService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		narrativeCalls++
		json.NewEncoder(w).Encode(map[string]string{
			"text": "Arsenal's perfect record is not priced into odds of 3.0.",
		})
	}))
	defer reasoningService.Close()

	narrativeCfg := &config.NarrativeConfig{
		Enabled:               true,
		BaseURL:               reasoningService.URL,
		Model:                 "analyst-small",
		RequestTimeoutSeconds: 5,
		MaxRetries:            1,
		RateLimit:             100,
	}
	client := narrative.NewClient(narrativeCfg, log)
	defer client.Close()
	generator := narrative.NewCachedGenerator(client, time.Minute, 100, log)

	analyzer := analysis.NewAnalyzer(
		scoring.DefaultWeights(),
		analysis.Thresholds{MinExpectedValue: 0.05, MinConfidence: 0.60},
		0.25,
		generator,
		log,
	)

	api := httptest.NewServer(server.New(analyzer,
		&config.ServerConfig{Port: 0, TimeoutSeconds: 10},
		&config.MetricsConfig{Enabled: true, Path: "/metrics"},
		log,
	).Handler())
	defer api.Close()

	request := map[string]string{
		"team1":        "Arsenal",
		"team2":        "Chelsea",
		"team1_odds":   "3.0",
		"team2_odds":   "2.5",
		"draw_odds":    "3.5",
		"team1_form":   "WWWWW",
		"team1_record": "20W-0L-0D",
		"team2_form":   "LLLLL",
		"team2_record": "0W-20L-0D",
		"head_to_head": "5-0-0",
		"home_team":    "Arsenal",
	}

	analyze := func() models.MatchAnalysis {
		body, err := json.Marshal(request)
		require.NoError(t, err)

		resp, err := http.Post(api.URL+"/api/v1/analyze", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result models.MatchAnalysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		return result
	}

	first := analyze()
	assert.Equal(t, models.RecommendBetTeam1, first.Recommendation)
	assert.Contains(t, first.Analysis, "Arsenal")
	assert.Equal(t, 1, narrativeCalls)

	// Identical facts come out of the narrative cache, not the service.
	second := analyze()
	assert.Equal(t, first.Analysis, second.Analysis)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, narrativeCalls)
}
