package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/value-edge/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestConvertProbabilitiesSumToOne(t *testing.T) {
	quotes := []models.OddsQuote{
		{Team1: 2.5, Team2: 1.8},
		{Team1: 2.1, Team2: 3.4, Draw: ptr(3.2)},
		{Team1: 1.01, Team2: 50.0},
	}

	for _, quote := range quotes {
		market, err := Convert(quote)
		require.NoError(t, err)

		var sum float64
		for _, p := range market.Probabilities {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestConvertOverround(t *testing.T) {
	// 1/2.0 + 1/2.0 + 1/4.0 = 1.25, so the margin is 25%.
	market, err := Convert(models.OddsQuote{Team1: 2.0, Team2: 2.0, Draw: ptr(4.0)})
	require.NoError(t, err)

	assert.InDelta(t, 0.25, market.Overround, 1e-9)
	assert.InDelta(t, 0.4, market.Implied(models.OutcomeTeam1), 1e-9)
	assert.InDelta(t, 0.4, market.Implied(models.OutcomeTeam2), 1e-9)
	assert.InDelta(t, 0.2, market.Implied(models.OutcomeDraw), 1e-9)
}

func TestConvertRejectsInvalidOdds(t *testing.T) {
	tests := []struct {
		name  string
		quote models.OddsQuote
	}{
		{"team1 at 1.0", models.OddsQuote{Team1: 1.0, Team2: 2.0}},
		{"team2 below 1.0", models.OddsQuote{Team1: 2.0, Team2: 0.9}},
		{"draw at 1.0", models.OddsQuote{Team1: 2.0, Team2: 2.0, Draw: ptr(1.0)}},
		{"zero odds", models.OddsQuote{Team1: 0, Team2: 2.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.quote)
			assert.ErrorIs(t, err, models.ErrInvalidOdds)
		})
	}
}

func TestConvertOmittedDraw(t *testing.T) {
	market, err := Convert(models.OddsQuote{Team1: 2.5, Team2: 1.8})
	require.NoError(t, err)

	_, present := market.Probabilities[models.OutcomeDraw]
	assert.False(t, present)
	assert.Len(t, market.Probabilities, 2)
}
