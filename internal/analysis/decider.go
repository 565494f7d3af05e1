package analysis

import (
	"github.com/yourusername/value-edge/internal/models"
)

// evTieTolerance treats expected values this close as equal for tie-breaking.
const evTieTolerance = 1e-9

// Thresholds gate when a positive-EV outcome becomes a recommendation.
type Thresholds struct {
	MinExpectedValue float64
	MinConfidence    float64
}

// Decider turns per-outcome estimates into a single recommendation.
type Decider struct {
	thresholds Thresholds
}

// NewDecider creates a decider with the configured thresholds.
func NewDecider(thresholds Thresholds) *Decider {
	return &Decider{thresholds: thresholds}
}

// Decide selects the outcome with the highest expected value and recommends
// betting on it when both thresholds are met. Ties in EV are broken by higher
// estimated probability, then by the fixed outcome precedence team1 > team2 >
// draw, which is the order estimates arrive in. The chosen estimate is
// returned either way so callers can report the numbers that drove a "no bet".
func (d *Decider) Decide(estimates []models.OutcomeEstimate) (models.Recommendation, models.OutcomeEstimate) {
	if len(estimates) == 0 {
		return models.RecommendNoBet, models.OutcomeEstimate{}
	}

	best := estimates[0]
	for _, e := range estimates[1:] {
		switch {
		case e.ExpectedValue > best.ExpectedValue+evTieTolerance:
			best = e
		case e.ExpectedValue > best.ExpectedValue-evTieTolerance &&
			e.EstimatedProbability > best.EstimatedProbability:
			best = e
		}
	}

	if best.ExpectedValue >= d.thresholds.MinExpectedValue &&
		best.EstimatedProbability >= d.thresholds.MinConfidence {
		return models.RecommendationFor(best.Outcome), best
	}
	return models.RecommendNoBet, best
}
