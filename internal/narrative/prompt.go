package narrative

import (
	"fmt"
	"strings"

	"github.com/yourusername/value-edge/internal/models"
)

// outcomeLabel renders an outcome with the team names the reader knows.
func outcomeLabel(o models.Outcome, facts Facts) string {
	switch o {
	case models.OutcomeTeam1:
		return facts.Team1
	case models.OutcomeTeam2:
		return facts.Team2
	case models.OutcomeDraw:
		return "Draw"
	default:
		return string(o)
	}
}

// BuildPrompt renders the computed numbers into the prompt sent to the
// reasoning service. The service is asked to explain the numbers, never to
// change them: the recommendation and every probability are already final.
func BuildPrompt(facts Facts) string {
	var b strings.Builder

	b.WriteString("You are a sports betting analyst. Write a concise analysis of the following match, explaining the recommendation using only the numbers provided.\n\n")

	fmt.Fprintf(&b, "MATCH: %s vs %s\n", facts.Team1, facts.Team2)
	if facts.HomeTeam != "" {
		fmt.Fprintf(&b, "Home team: %s\n", facts.HomeTeam)
	}
	if facts.AdditionalContext != "" {
		fmt.Fprintf(&b, "Context: %s\n", facts.AdditionalContext)
	}

	b.WriteString("\nCOMPUTED NUMBERS:\n")
	fmt.Fprintf(&b, "- %s strength score: %.3f\n", facts.Team1, facts.Team1Strength)
	fmt.Fprintf(&b, "- %s strength score: %.3f\n", facts.Team2, facts.Team2Strength)
	fmt.Fprintf(&b, "- Bookmaker overround: %.2f%%\n", facts.Overround*100)

	for _, e := range facts.Estimates {
		fmt.Fprintf(&b, "- %s: odds %.2f, implied probability %.1f%%, estimated probability %.1f%%, expected value %+.1f%%\n",
			outcomeLabel(e.Outcome, facts), e.Odds,
			e.ImpliedProbability*100, e.EstimatedProbability*100, e.ExpectedValue*100)
	}

	b.WriteString("\nDECISION:\n")
	fmt.Fprintf(&b, "- Recommendation: %s\n", facts.Recommendation)
	fmt.Fprintf(&b, "- Confidence: %.1f%%\n", facts.Confidence*100)
	fmt.Fprintf(&b, "- Expected value: %+.1f%%\n", facts.ExpectedValue*100)

	b.WriteString("\nExplain the reasoning behind this decision, note where the market price diverges from the estimated probabilities, and mention the main risks. Do not change any of the numbers or the recommendation.")

	return b.String()
}
