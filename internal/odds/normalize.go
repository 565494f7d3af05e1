package odds

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuoted converts an odds string in decimal ("2.5"), fractional ("5/2")
// or American ("+150", "-200") format into decimal odds. Exact decimal
// arithmetic is used so that e.g. "5/2" round-trips to precisely 3.5.
func ParseQuoted(oddsStr string) (float64, error) {
	s := strings.TrimSpace(oddsStr)
	if s == "" {
		return 0, fmt.Errorf("empty odds string")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		return parseFractional(num, den)
	}

	if strings.HasPrefix(s, "+") || isAmericanNegative(s) {
		return parseAmerican(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("unrecognized odds format %q", oddsStr)
	}
	return d.InexactFloat64(), nil
}

func parseFractional(num, den string) (float64, error) {
	n, err := decimal.NewFromString(strings.TrimSpace(num))
	if err != nil {
		return 0, fmt.Errorf("invalid fractional odds numerator %q", num)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(den))
	if err != nil {
		return 0, fmt.Errorf("invalid fractional odds denominator %q", den)
	}
	if d.IsZero() {
		return 0, fmt.Errorf("fractional odds denominator must not be zero")
	}
	return n.Div(d).Add(decimal.NewFromInt(1)).InexactFloat64(), nil
}

func parseAmerican(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid american odds %q", s)
	}
	hundred := decimal.NewFromInt(100)
	one := decimal.NewFromInt(1)
	if d.IsPositive() {
		return d.Div(hundred).Add(one).InexactFloat64(), nil
	}
	if d.IsNegative() {
		return hundred.Div(d.Abs()).Add(one).InexactFloat64(), nil
	}
	return 0, fmt.Errorf("invalid american odds %q", s)
}

// isAmericanNegative distinguishes "-200" (American odds) from strings that
// merely fail to parse. Decimal odds are never negative, so a leading minus
// always means American format.
func isAmericanNegative(s string) bool {
	return strings.HasPrefix(s, "-")
}
