package signal

import (
	"regexp"
	"strconv"
)

// Head-to-head tallies look like "3-2-1": team1 wins, team2 wins, draws.
// The draws segment is optional.
var headToHeadPattern = regexp.MustCompile(`^\s*(\d+)-(\d+)(?:-(\d+))?\s*$`)

// ParseHeadToHead converts a head-to-head tally string into per-team scores
// in [0,1]. A team's score is (its wins + 0.5*draws) / total matchups. The
// third return is false when a non-empty tally did not match the expected
// format; both scores are then the neutral default.
func ParseHeadToHead(h2h string) (team1, team2 float64, ok bool) {
	if h2h == "" {
		return Neutral, Neutral, true
	}

	m := headToHeadPattern.FindStringSubmatch(h2h)
	if m == nil {
		return Neutral, Neutral, false
	}

	team1Wins, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Neutral, Neutral, false
	}
	team2Wins, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Neutral, Neutral, false
	}
	var draws float64
	if m[3] != "" {
		draws, err = strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Neutral, Neutral, false
		}
	}

	total := team1Wins + team2Wins + draws
	if total == 0 {
		return Neutral, Neutral, true
	}
	return (team1Wins + 0.5*draws) / total, (team2Wins + 0.5*draws) / total, true
}
