// Package narrative integrates the external reasoning service that turns
// computed match numbers into free-text analysis. The numeric pipeline never
// depends on it succeeding: any failure degrades to empty text.
package narrative

import (
	"context"

	"github.com/yourusername/value-edge/internal/models"
)

// Facts carries the computed numbers handed to the reasoning service. The
// service only ever sees results of the numeric pipeline, never raw inputs it
// could second-guess.
type Facts struct {
	Team1             string                   `json:"team1"`
	Team2             string                   `json:"team2"`
	HomeTeam          string                   `json:"home_team,omitempty"`
	AdditionalContext string                   `json:"additional_context,omitempty"`
	Team1Strength     float64                  `json:"team1_strength"`
	Team2Strength     float64                  `json:"team2_strength"`
	Overround         float64                  `json:"overround"`
	Estimates         []models.OutcomeEstimate `json:"estimates"`
	Recommendation    models.Recommendation    `json:"recommendation"`
	Confidence        float64                  `json:"confidence"`
	ExpectedValue     float64                  `json:"expected_value"`
}

// Generator produces free-text analysis from computed facts. Implementations
// return an empty string (with or without an error) when no text is
// available; callers must treat both the same way.
type Generator interface {
	Generate(ctx context.Context, facts Facts) (string, error)
}

// Noop is the generator used when no reasoning service is configured.
type Noop struct{}

// Generate always returns empty text.
func (Noop) Generate(ctx context.Context, facts Facts) (string, error) {
	return "", nil
}
