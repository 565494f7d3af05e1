package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/value-edge/internal/logger"
	"github.com/yourusername/value-edge/internal/metrics"
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/narrative"
	"github.com/yourusername/value-edge/internal/odds"
	"github.com/yourusername/value-edge/internal/scoring"
	"github.com/yourusername/value-edge/internal/signal"
)

// Analyzer is the public entry point of the engine. It is pure given its
// inputs and the immutable configuration, so concurrent calls are safe
// without locking.
type Analyzer struct {
	scorer    *scoring.Scorer
	estimator *Estimator
	decider   *Decider
	generator narrative.Generator
	logger    *logrus.Logger
	decisions *logger.DecisionLogger
}

// NewAnalyzer wires the scoring pipeline together. Pass narrative.Noop{} when
// no reasoning service is configured.
func NewAnalyzer(weights scoring.Weights, thresholds Thresholds, drawBand float64, generator narrative.Generator, log *logrus.Logger) *Analyzer {
	if generator == nil {
		generator = narrative.Noop{}
	}
	return &Analyzer{
		scorer:    scoring.NewScorer(weights),
		estimator: NewEstimator(drawBand),
		decider:   NewDecider(thresholds),
		generator: generator,
		logger:    log,
		decisions: logger.NewDecisionLogger(log),
	}
}

// AnalyzeMatch validates the input, runs the scoring pipeline and assembles
// the result record. Signal-quality problems degrade to neutral defaults;
// only invalid required input or an invalid market aborts the call.
func (a *Analyzer) AnalyzeMatch(ctx context.Context, input models.MatchInput) (*models.MatchAnalysis, error) {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	if err := validateInput(input); err != nil {
		metrics.ValidationFailuresTotal.Inc()
		return nil, err
	}

	market, err := odds.Convert(input.Odds)
	if err != nil {
		metrics.InvalidMarketsTotal.Inc()
		return nil, err
	}

	team1Evidence, team2Evidence := a.gatherEvidence(input)

	team1Strength := a.scorer.Score(team1Evidence)
	team2Strength := a.scorer.Score(team2Evidence)

	marketFallback := signalsEmpty(input)
	estimates := a.estimator.Estimate(team1Strength, team2Strength, market, input.Odds, marketFallback)
	recommendation, chosen := a.decider.Decide(estimates)

	result := &models.MatchAnalysis{
		ID:             uuid.New(),
		Input:          input,
		Team1Strength:  team1Strength,
		Team2Strength:  team2Strength,
		Overround:      market.Overround,
		Estimates:      estimates,
		Recommendation: recommendation,
		Confidence:     chosen.EstimatedProbability,
		ExpectedValue:  chosen.ExpectedValue,
		MarketFallback: marketFallback,
		AnalyzedAt:     time.Now().UTC(),
	}

	result.Analysis = a.generateNarrative(ctx, result)

	metrics.AnalysesTotal.Inc()
	metrics.RecommendationsTotal.WithLabelValues(string(recommendation)).Inc()

	a.decisions.LogRecommendation(result.ID.String(), input.Team1, input.Team2,
		string(recommendation), result.Confidence, result.ExpectedValue, marketFallback)

	return result, nil
}

// gatherEvidence parses the raw signal strings for both teams. The
// head-to-head tally and home flag are match-level inputs shared across the
// two evidence sets.
func (a *Analyzer) gatherEvidence(input models.MatchInput) (scoring.Evidence, scoring.Evidence) {
	team1H2H, team2H2H, ok := signal.ParseHeadToHead(input.HeadToHead)
	if !ok {
		a.decisions.LogSignalDegradation("match", "head_to_head", input.HeadToHead)
	}
	team1Home, team2Home := homeStatus(input)

	team1 := scoring.Evidence{
		Form:       a.parseForm(input.Team1, input.Team1Signal.RecentForm),
		Record:     a.parseRecord(input.Team1, input.Team1Signal.Record),
		HeadToHead: team1H2H,
		Home:       team1Home,
	}
	team2 := scoring.Evidence{
		Form:       a.parseForm(input.Team2, input.Team2Signal.RecentForm),
		Record:     a.parseRecord(input.Team2, input.Team2Signal.Record),
		HeadToHead: team2H2H,
		Home:       team2Home,
	}
	return team1, team2
}

func (a *Analyzer) parseForm(team, form string) float64 {
	score, ok := signal.ParseForm(form)
	if !ok {
		a.decisions.LogSignalDegradation(team, "recent_form", form)
	}
	return score
}

func (a *Analyzer) parseRecord(team, record string) float64 {
	score, ok := signal.ParseRecord(record)
	if !ok {
		a.decisions.LogSignalDegradation(team, "record", record)
	}
	return score
}

// generateNarrative invokes the external reasoning service with the computed
// numbers. Any failure, timeout or empty response degrades to empty text; the
// numeric result stands on its own.
func (a *Analyzer) generateNarrative(ctx context.Context, result *models.MatchAnalysis) string {
	facts := narrative.Facts{
		Team1:             result.Input.Team1,
		Team2:             result.Input.Team2,
		HomeTeam:          result.Input.HomeTeam,
		AdditionalContext: result.Input.AdditionalContext,
		Team1Strength:     result.Team1Strength,
		Team2Strength:     result.Team2Strength,
		Overround:         result.Overround,
		Estimates:         result.Estimates,
		Recommendation:    result.Recommendation,
		Confidence:        result.Confidence,
		ExpectedValue:     result.ExpectedValue,
	}

	text, err := a.generator.Generate(ctx, facts)
	if err != nil {
		a.decisions.LogNarrativeFallback(result.ID.String(), err.Error())
		return ""
	}
	return text
}

// validateInput checks the required fields and reports every violation.
func validateInput(input models.MatchInput) error {
	verr := &models.ValidationError{}

	if strings.TrimSpace(input.Team1) == "" {
		verr.Add("team1 name must not be empty")
	}
	if strings.TrimSpace(input.Team2) == "" {
		verr.Add("team2 name must not be empty")
	}
	if input.Odds.Team1 <= 1.0 {
		verr.Add("team1 odds must be greater than 1.0, got %.4f", input.Odds.Team1)
	}
	if input.Odds.Team2 <= 1.0 {
		verr.Add("team2 odds must be greater than 1.0, got %.4f", input.Odds.Team2)
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// homeStatus resolves the home team name against the two team names,
// case-insensitively. A name matching neither team carries no usable signal
// and is treated as unspecified.
func homeStatus(input models.MatchInput) (scoring.HomeStatus, scoring.HomeStatus) {
	home := strings.TrimSpace(input.HomeTeam)
	if home == "" {
		return scoring.HomeUnknown, scoring.HomeUnknown
	}
	switch {
	case strings.EqualFold(home, strings.TrimSpace(input.Team1)):
		return scoring.HomeYes, scoring.HomeNo
	case strings.EqualFold(home, strings.TrimSpace(input.Team2)):
		return scoring.HomeNo, scoring.HomeYes
	default:
		return scoring.HomeUnknown, scoring.HomeUnknown
	}
}

// signalsEmpty reports whether no team evidence at all was supplied, in which
// case the estimate falls back to the market's own implied probabilities.
func signalsEmpty(input models.MatchInput) bool {
	return input.Team1Signal.IsEmpty() &&
		input.Team2Signal.IsEmpty() &&
		input.HeadToHead == "" &&
		input.HomeTeam == ""
}
