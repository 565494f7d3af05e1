package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())

	bad := Weights{Form: 0.5, Record: 0.5, HeadToHead: 0.5, Home: 0.5}
	assert.Error(t, bad.Validate())

	negative := Weights{Form: -0.2, Record: 0.6, HeadToHead: 0.3, Home: 0.3}
	assert.Error(t, negative.Validate())
}

func TestScorerNeutralEvidence(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	score := scorer.Score(Evidence{Form: 0.5, Record: 0.5, HeadToHead: 0.5, Home: HomeUnknown})
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScorerStrongTeam(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	score := scorer.Score(Evidence{Form: 1.0, Record: 1.0, HeadToHead: 1.0, Home: HomeYes})
	assert.InDelta(t, 1.0, score, 1e-9)

	weak := scorer.Score(Evidence{Form: 0.0, Record: 0.0, HeadToHead: 0.0, Home: HomeNo})
	assert.InDelta(t, 0.0, weak, 1e-9)
}

func TestScorerHomeAdvantage(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	base := Evidence{Form: 0.5, Record: 0.5, HeadToHead: 0.5}

	home := base
	home.Home = HomeYes
	away := base
	away.Home = HomeNo

	assert.Greater(t, scorer.Score(home), scorer.Score(away))
	assert.Greater(t, scorer.Score(home), scorer.Score(base))
}

func TestScorerClampsToUnitInterval(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	score := scorer.Score(Evidence{Form: 5, Record: 5, HeadToHead: 5, Home: HomeYes})
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
}
