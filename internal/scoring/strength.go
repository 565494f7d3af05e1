// Package scoring combines parsed team evidence into strength scores.
package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs floating point drift when checking that the
// configured weights sum to 1.
const weightSumTolerance = 1e-6

// Weights controls the contribution of each evidence source to the strength
// score. All weights must be non-negative and sum to 1.0.
type Weights struct {
	Form       float64 `mapstructure:"form" json:"form" validate:"gte=0"`
	Record     float64 `mapstructure:"record" json:"record" validate:"gte=0"`
	HeadToHead float64 `mapstructure:"head_to_head" json:"head_to_head" validate:"gte=0"`
	Home       float64 `mapstructure:"home" json:"home" validate:"gte=0"`
}

// DefaultWeights returns the standard evidence weighting.
func DefaultWeights() Weights {
	return Weights{
		Form:       0.35,
		Record:     0.30,
		HeadToHead: 0.20,
		Home:       0.15,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Form < 0 || w.Record < 0 || w.HeadToHead < 0 || w.Home < 0 {
		return fmt.Errorf("strength weights must be non-negative")
	}
	sum := w.Form + w.Record + w.HeadToHead + w.Home
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("strength weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// HomeStatus describes whether a team plays at home for this match.
type HomeStatus int

const (
	// HomeUnknown means the home team was not specified.
	HomeUnknown HomeStatus = iota
	// HomeYes means this team is the home team.
	HomeYes
	// HomeNo means the other team is the home team.
	HomeNo
)

// homeFactor converts home status into an advantage score.
func homeFactor(status HomeStatus) float64 {
	switch status {
	case HomeYes:
		return 1.0
	case HomeNo:
		return 0.0
	default:
		return 0.5
	}
}

// Evidence holds one team's parsed signal scores, each already in [0,1].
type Evidence struct {
	Form       float64
	Record     float64
	HeadToHead float64
	Home       HomeStatus
}

// Scorer computes strength scores from weighted evidence.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights. The weights must have
// been validated at configuration load.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score computes the weighted strength score for one team, clamped to [0,1].
// Scores for the two teams are independent evidence signals; they are not
// normalized against each other here. Normalization into outcome
// probabilities happens only when estimates are assigned, keeping strength
// evidence decoupled from market-probability math.
func (s *Scorer) Score(ev Evidence) float64 {
	score := s.weights.Form*ev.Form +
		s.weights.Record*ev.Record +
		s.weights.HeadToHead*ev.HeadToHead +
		s.weights.Home*homeFactor(ev.Home)
	return clamp(score)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
