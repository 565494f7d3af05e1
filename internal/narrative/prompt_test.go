package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/value-edge/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	facts := sampleFacts()
	facts.HomeTeam = "Arsenal"
	facts.AdditionalContext = "Chelsea missing two defenders"
	facts.Estimates = []models.OutcomeEstimate{
		{Outcome: models.OutcomeTeam1, Odds: 2.5, ImpliedProbability: 0.40, EstimatedProbability: 0.55, ExpectedValue: 0.375},
		{Outcome: models.OutcomeTeam2, Odds: 2.8, ImpliedProbability: 0.357, EstimatedProbability: 0.30, ExpectedValue: -0.16},
		{Outcome: models.OutcomeDraw, Odds: 3.2, ImpliedProbability: 0.3125, EstimatedProbability: 0.15, ExpectedValue: -0.52},
	}

	prompt := BuildPrompt(facts)

	assert.Contains(t, prompt, "MATCH: Arsenal vs Chelsea")
	assert.Contains(t, prompt, "Home team: Arsenal")
	assert.Contains(t, prompt, "Context: Chelsea missing two defenders")
	assert.Contains(t, prompt, "Recommendation: bet_team1")
	// Draw outcomes are labelled, not exposed as enum values.
	assert.Contains(t, prompt, "Draw: odds 3.20")
	assert.NotContains(t, prompt, "team1_win")
	// The service is told not to touch the numbers.
	assert.Contains(t, prompt, "Do not change any of the numbers")
}

func TestBuildPrompt_OptionalLinesOmitted(t *testing.T) {
	prompt := BuildPrompt(sampleFacts())

	assert.NotContains(t, prompt, "Home team:")
	assert.NotContains(t, prompt, "Context:")
}
