package odds

// RemoveVig removes the vig/juice from a two-way market
// Returns the true probabilities that sum to 1.0
//
// Method: Multiplicative vig removal (proportional)
// trueProbA = impliedA / (impliedA + impliedB)
// trueProbB = impliedB / (impliedA + impliedB)
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	if impliedA <= 0 || impliedB <= 0 {
		return 0, 0
	}

	total := impliedA + impliedB
	if total <= 0 {
		return 0, 0
	}

	return impliedA / total, impliedB / total
}

// RemoveVigFromDecimal converts decimal odds to vig-free probabilities
func RemoveVigFromDecimal(oddsA, oddsB float64) (float64, float64) {
	return RemoveVig(DecimalToImplied(oddsA), DecimalToImplied(oddsB))
}

// Overround returns how far the implied probabilities of a two-way market
// exceed 1.0. A bookmaker margin is positive; a negative value means the
// prices are an arbitrage.
// Example: 1.91/1.91 → +0.047, 2.5/1.8 → -0.044
func Overround(oddsA, oddsB float64) float64 {
	if oddsA <= 0 || oddsB <= 0 {
		return 0
	}
	return DecimalToImplied(oddsA) + DecimalToImplied(oddsB) - 1.0
}
