// Package odds converts bookmaker odds into normalized implied probabilities.
package odds

import (
	"fmt"

	"github.com/yourusername/value-edge/internal/models"
)

// ImpliedMarket holds the margin-free probabilities derived from a quote.
type ImpliedMarket struct {
	// Probabilities maps each present outcome to its implied probability
	// after overround removal. The values sum to 1.
	Probabilities map[models.Outcome]float64
	// Overround is the bookmaker margin: sum of raw 1/odds minus 1.
	Overround float64
}

// Implied returns the implied probability for an outcome, or 0 when the
// outcome is not part of the market.
func (m ImpliedMarket) Implied(o models.Outcome) float64 {
	return m.Probabilities[o]
}

// Convert derives implied probabilities from a quote. For each present
// outcome raw_i = 1/odds_i; the overround is stripped by dividing each raw
// value by their sum. Fails with ErrInvalidOdds when any odds value is at or
// below 1.0, or when fewer than two outcomes are supplied.
func Convert(quote models.OddsQuote) (ImpliedMarket, error) {
	outcomes := quote.Outcomes()
	if len(outcomes) < 2 {
		return ImpliedMarket{}, models.ErrTooFewOutcomes
	}

	raw := make(map[models.Outcome]float64, len(outcomes))
	var rawSum float64
	for _, o := range outcomes {
		value := quote.Odds(o)
		if value <= 1.0 {
			return ImpliedMarket{}, fmt.Errorf("%w: %s quoted at %.4f, must be greater than 1.0", models.ErrInvalidOdds, o, value)
		}
		raw[o] = 1.0 / value
		rawSum += 1.0 / value
	}

	probabilities := make(map[models.Outcome]float64, len(outcomes))
	for o, r := range raw {
		probabilities[o] = r / rawSum
	}

	return ImpliedMarket{
		Probabilities: probabilities,
		Overround:     rawSum - 1.0,
	}, nil
}
