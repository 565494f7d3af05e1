package models

// OddsQuote holds the bookmaker's decimal odds for a match. Draw is nil for
// two-outcome markets.
type OddsQuote struct {
	Team1 float64  `json:"team1_odds" validate:"required,gt=1"`
	Team2 float64  `json:"team2_odds" validate:"required,gt=1"`
	Draw  *float64 `json:"draw_odds,omitempty"`
}

// HasDraw reports whether the market quotes a draw outcome.
func (q OddsQuote) HasDraw() bool {
	return q.Draw != nil
}

// Outcomes returns the outcomes present in the market, in fixed precedence
// order (team1, team2, draw).
func (q OddsQuote) Outcomes() []Outcome {
	outcomes := []Outcome{OutcomeTeam1, OutcomeTeam2}
	if q.Draw != nil {
		outcomes = append(outcomes, OutcomeDraw)
	}
	return outcomes
}

// Odds returns the quoted decimal odds for an outcome. Returns 0 when the
// outcome is not part of the market.
func (q OddsQuote) Odds(o Outcome) float64 {
	switch o {
	case OutcomeTeam1:
		return q.Team1
	case OutcomeTeam2:
		return q.Team2
	case OutcomeDraw:
		if q.Draw != nil {
			return *q.Draw
		}
	}
	return 0
}
