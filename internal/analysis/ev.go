// Package analysis hosts the expected value calculation, the recommendation
// decision and the match analysis orchestrator.
package analysis

import (
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/odds"
)

// Estimator derives outcome probabilities from team strength and computes
// the expected value against quoted odds.
type Estimator struct {
	// drawBand scales the draw propensity: the closer the two strength
	// scores, the larger the share (up to drawBand) assigned to the draw.
	drawBand float64
}

// NewEstimator creates an estimator with the configured draw band.
func NewEstimator(drawBand float64) *Estimator {
	return &Estimator{drawBand: drawBand}
}

// Estimate computes per-outcome estimated probabilities and expected values.
//
// Probabilities come from normalized team strengths. When the market quotes a
// draw, a draw propensity of (1 - |s1 - s2|) scaled into the configured band
// joins the normalization. When marketFallback is set (no team evidence was
// supplied at all), the market's own implied probabilities are used instead.
// Every EV then lands at -overround/(1+overround), near zero: there is no
// informational edge over the market and the numbers surface that.
func (e *Estimator) Estimate(team1Strength, team2Strength float64, market odds.ImpliedMarket, quote models.OddsQuote, marketFallback bool) []models.OutcomeEstimate {
	estimated := make(map[models.Outcome]float64, 3)

	if marketFallback {
		for _, o := range quote.Outcomes() {
			estimated[o] = market.Implied(o)
		}
	} else {
		drawPropensity := 0.0
		if quote.HasDraw() {
			spread := team1Strength - team2Strength
			if spread < 0 {
				spread = -spread
			}
			drawPropensity = (1.0 - spread) * e.drawBand
		}
		total := team1Strength + team2Strength + drawPropensity
		if total <= 0 {
			// Degenerate evidence (both strengths zero with no draw
			// market) carries no usable signal either.
			for _, o := range quote.Outcomes() {
				estimated[o] = market.Implied(o)
			}
		} else {
			estimated[models.OutcomeTeam1] = team1Strength / total
			estimated[models.OutcomeTeam2] = team2Strength / total
			if quote.HasDraw() {
				estimated[models.OutcomeDraw] = drawPropensity / total
			}
		}
	}

	results := make([]models.OutcomeEstimate, 0, 3)
	for _, o := range quote.Outcomes() {
		p := estimated[o]
		quoted := quote.Odds(o)
		results = append(results, models.OutcomeEstimate{
			Outcome:              o,
			Odds:                 quoted,
			ImpliedProbability:   market.Implied(o),
			EstimatedProbability: p,
			ExpectedValue:        p*quoted - 1.0,
		})
	}
	return results
}
