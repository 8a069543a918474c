package odds

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidOdds is returned when odds text cannot be read as a price.
var ErrInvalidOdds = errors.New("invalid odds")

// Parse reads odds text and returns decimal odds.
//
// Accepted formats:
//   - decimal: "2.5", "1.80"
//   - American: "+150", "-200" (explicit sign, |value| >= 100)
//   - fractional: "5/2", "1/4"
//
// The result must be greater than 1.0: at 1.0 or below a winning bet never
// returns more than its stake.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidOdds)
	}

	var (
		decimal float64
		err     error
	)

	switch {
	case strings.Contains(s, "/"):
		decimal, err = parseFractional(s)
	case s[0] == '+' || s[0] == '-':
		decimal, err = parseAmerican(s)
	default:
		decimal, err = parseNumber(s)
	}
	if err != nil {
		return 0, err
	}

	return checkDecimal(s, decimal)
}

func parseFractional(s string) (float64, error) {
	num, den, _ := strings.Cut(s, "/")
	n, err := parseNumber(strings.TrimSpace(num))
	if err != nil {
		return 0, err
	}
	d, err := parseNumber(strings.TrimSpace(den))
	if err != nil {
		return 0, err
	}
	if n <= 0 || d <= 0 {
		return 0, fmt.Errorf("%w: fractional odds %q must have positive parts", ErrInvalidOdds, s)
	}
	return FractionalToDecimal(n, d), nil
}

func parseAmerican(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if math.Abs(v) < 100 {
		return 0, fmt.Errorf("%w: American odds %q must be at least 100 in magnitude", ErrInvalidOdds, s)
	}
	return AmericanToDecimal(v), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidOdds, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidOdds, s)
	}
	return v, nil
}

func checkDecimal(s string, decimal float64) (float64, error) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidOdds, s)
	}
	if decimal <= 1.0 {
		return 0, fmt.Errorf("%w: %q must be greater than 1.0 in decimal odds", ErrInvalidOdds, s)
	}
	return decimal, nil
}
