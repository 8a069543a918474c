package odds

import "math"

// AmericanToDecimal converts American odds to decimal odds
// Example: +150 → 2.5, -200 → 1.5
func AmericanToDecimal(american float64) float64 {
	if american == 0 {
		return 0
	}
	if american > 0 {
		return american/100.0 + 1.0
	}
	return 100.0/math.Abs(american) + 1.0
}

// DecimalToAmerican converts decimal odds to American odds
// Example: 2.5 → +150, 1.5 → -200
// Odds at or below 1.0 have no American equivalent and return 0.
func DecimalToAmerican(decimal float64) float64 {
	if decimal <= 1.0 {
		return 0
	}
	if decimal >= 2.0 {
		return (decimal - 1.0) * 100
	}
	return -100.0 / (decimal - 1.0)
}

// FractionalToDecimal converts fractional odds n/d to decimal odds
// Example: 5/2 → 3.5, 1/4 → 1.25
func FractionalToDecimal(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator/denominator + 1.0
}

// AmericanToImplied converts American odds to implied probability
// Example: -150 → 0.6 (60%), +150 → 0.4 (40%)
func AmericanToImplied(odds float64) float64 {
	if odds == 0 {
		return 0
	}

	if odds > 0 {
		// Underdog: probability = 100 / (odds + 100)
		return 100.0 / (odds + 100.0)
	}
	// Favorite: probability = |odds| / (|odds| + 100)
	return math.Abs(odds) / (math.Abs(odds) + 100.0)
}

// DecimalToImplied converts decimal odds to implied probability (1/odds)
func DecimalToImplied(decimal float64) float64 {
	if decimal <= 0 {
		return 0
	}
	return 1.0 / decimal
}
