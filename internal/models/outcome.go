package models

// Outcome identifies one of the three possible match results.
type Outcome string

const (
	OutcomeTeam1 Outcome = "team1_win"
	OutcomeTeam2 Outcome = "team2_win"
	OutcomeDraw  Outcome = "draw"
)

// Recommendation is the final decision emitted for a match.
type Recommendation string

const (
	RecommendBetTeam1 Recommendation = "bet_team1"
	RecommendBetTeam2 Recommendation = "bet_team2"
	RecommendBetDraw  Recommendation = "bet_draw"
	RecommendNoBet    Recommendation = "no_bet"
)

// RecommendationFor maps an outcome to its betting recommendation.
func RecommendationFor(o Outcome) Recommendation {
	switch o {
	case OutcomeTeam1:
		return RecommendBetTeam1
	case OutcomeTeam2:
		return RecommendBetTeam2
	case OutcomeDraw:
		return RecommendBetDraw
	default:
		return RecommendNoBet
	}
}
