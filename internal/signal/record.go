package signal

import (
	"regexp"
	"strconv"
)

// Season records look like "15W-5L-3D"; the draw segment is optional.
var recordPattern = regexp.MustCompile(`^\s*(\d+)W-(\d+)L(?:-(\d+)D)?\s*$`)

// ParseRecord converts a season tally string into a win rate in [0,1], with
// draws counted at half weight to stay consistent with ParseForm. The second
// return is false when a non-empty string did not match the expected format;
// the score is then the neutral default.
func ParseRecord(record string) (float64, bool) {
	if record == "" {
		return Neutral, true
	}

	m := recordPattern.FindStringSubmatch(record)
	if m == nil {
		return Neutral, false
	}

	wins, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Neutral, false
	}
	losses, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Neutral, false
	}
	var draws float64
	if m[3] != "" {
		draws, err = strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Neutral, false
		}
	}

	total := wins + losses + draws
	if total == 0 {
		return Neutral, true
	}
	return (wins + 0.5*draws) / total, true
}
