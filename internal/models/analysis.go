package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchInput is the full set of caller-supplied data for one analysis. Odds
// for team1 and team2 are required; everything else is optional evidence.
type MatchInput struct {
	Team1             string    `json:"team1"`
	Team2             string    `json:"team2"`
	Odds              OddsQuote `json:"odds"`
	Team1Signal       TeamSignal `json:"team1_signal,omitempty"`
	Team2Signal       TeamSignal `json:"team2_signal,omitempty"`
	HeadToHead        string    `json:"head_to_head,omitempty"`
	HomeTeam          string    `json:"home_team,omitempty"`
	AdditionalContext string    `json:"additional_context,omitempty"`
}

// OutcomeEstimate holds the per-outcome numbers computed for a market entry.
type OutcomeEstimate struct {
	Outcome              Outcome `json:"outcome"`
	Odds                 float64 `json:"odds"`
	ImpliedProbability   float64 `json:"implied_probability"`
	EstimatedProbability float64 `json:"estimated_probability"`
	ExpectedValue        float64 `json:"expected_value"`
}

// MatchAnalysis is the immutable result record for one analyze call. It echoes
// the raw inputs for traceability and carries the free-text narrative, which
// may be empty when the generator is unavailable.
type MatchAnalysis struct {
	ID             uuid.UUID         `json:"id"`
	Input          MatchInput        `json:"input"`
	Team1Strength  float64           `json:"team1_strength"`
	Team2Strength  float64           `json:"team2_strength"`
	Overround      float64           `json:"overround"`
	Estimates      []OutcomeEstimate `json:"estimates"`
	Recommendation Recommendation    `json:"recommendation"`
	Confidence     float64           `json:"confidence"`
	ExpectedValue  float64           `json:"expected_value"`
	MarketFallback bool              `json:"market_fallback"`
	Analysis       string            `json:"analysis,omitempty"`
	AnalyzedAt     time.Time         `json:"analyzed_at"`
}

// Estimate returns the computed estimate for an outcome, if present.
func (a *MatchAnalysis) Estimate(o Outcome) (OutcomeEstimate, bool) {
	for _, e := range a.Estimates {
		if e.Outcome == o {
			return e, true
		}
	}
	return OutcomeEstimate{}, false
}
