// Package logger provides decision-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// DecisionLogger provides dedicated logging for analysis decisions.
type DecisionLogger struct {
	*logrus.Entry
}

// NewDecisionLogger creates a new decision logger.
func NewDecisionLogger(baseLogger *logrus.Logger) *DecisionLogger {
	return &DecisionLogger{
		Entry: baseLogger.WithField("component", "decision"),
	}
}

// LogRecommendation logs the outcome of a recommendation decision.
func (dl *DecisionLogger) LogRecommendation(analysisID, team1, team2, recommendation string, confidence, expectedValue float64, marketFallback bool) {
	dl.WithFields(logrus.Fields{
		"analysis_id":     analysisID,
		"team1":           team1,
		"team2":           team2,
		"recommendation":  recommendation,
		"confidence":      confidence,
		"expected_value":  expectedValue,
		"market_fallback": marketFallback,
	}).Info("Recommendation decided")
}

// LogSignalDegradation logs a malformed signal that fell back to the neutral
// default.
func (dl *DecisionLogger) LogSignalDegradation(team, signalType, rawValue string) {
	dl.WithFields(logrus.Fields{
		"team":        team,
		"signal_type": signalType,
		"raw_value":   rawValue,
		"event_type":  "signal_degradation",
	}).Warn("Signal unparseable, using neutral default")
}

// LogNarrativeFallback logs that the reasoning service was unavailable and
// the analysis proceeded without text.
func (dl *DecisionLogger) LogNarrativeFallback(analysisID, reason string) {
	dl.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"event_type":  "narrative_fallback",
		"reason":      reason,
	}).Warn("Continuing without narrative text")
}
