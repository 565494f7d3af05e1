// Package signal parses raw team evidence strings into normalized scores.
// Every parser degrades to the neutral default of 0.5 on missing or malformed
// input so that the scoring pipeline never aborts on bad signal quality.
package signal

import "strings"

// Neutral is the score substituted when a signal is absent or unparseable.
const Neutral = 0.5

// ParseForm converts a streak string such as "WWLWD" into a score in [0,1].
// Wins count 1, draws 0.5, losses 0, averaged over recognized characters.
// Characters outside {W,L,D} are skipped and do not count toward the total.
// The second return is false when a non-empty string contained nothing
// recognizable; the score is then the neutral default.
func ParseForm(form string) (float64, bool) {
	if form == "" {
		return Neutral, true
	}

	var wins, draws, total float64
	for _, c := range strings.ToUpper(form) {
		switch c {
		case 'W':
			wins++
			total++
		case 'D':
			draws++
			total++
		case 'L':
			total++
		}
	}
	if total == 0 {
		return Neutral, false
	}
	return (wins + 0.5*draws) / total, true
}
