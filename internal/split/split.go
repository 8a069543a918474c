package split

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when odds or investment are non-positive or not finite.
var ErrInvalidInput = errors.New("invalid input")

// Quote is the stake allocation for a two-way market.
// Both outcomes pay Pool; Profit is Pool minus TotalInvestment.
type Quote struct {
	OddsA           float64
	OddsB           float64
	TotalInvestment float64

	InvestmentA float64
	InvestmentB float64
	ProfitA     float64
	ProfitB     float64

	TotalWeight float64 // 1/OddsA + 1/OddsB
	Pool        float64 // Return on either outcome
	Profit      float64
}

// Split allocates totalInvestment across two outcomes so the payout is the
// same whichever one wins.
//
// Each stake is proportional to the outcome's implied weight (1/odds):
//
//	pool        = total / (1/oddsA + 1/oddsB)
//	investmentX = pool / oddsX
//	profit      = pool - total
func Split(oddsA, oddsB, totalInvestment float64) (Quote, error) {
	if err := checkPositive("odds_a", oddsA); err != nil {
		return Quote{}, err
	}
	if err := checkPositive("odds_b", oddsB); err != nil {
		return Quote{}, err
	}
	if err := checkPositive("total_investment", totalInvestment); err != nil {
		return Quote{}, err
	}

	weightA := 1 / oddsA
	weightB := 1 / oddsB
	totalWeight := weightA + weightB

	pool := totalInvestment / totalWeight

	investmentA := pool / oddsA
	investmentB := pool / oddsB

	if err := checkResult(totalWeight, pool, investmentA, investmentB); err != nil {
		return Quote{}, err
	}

	returnA := investmentA * oddsA
	returnB := investmentB * oddsB

	return Quote{
		OddsA:           oddsA,
		OddsB:           oddsB,
		TotalInvestment: totalInvestment,
		InvestmentA:     investmentA,
		InvestmentB:     investmentB,
		ProfitA:         returnA - totalInvestment,
		ProfitB:         returnB - totalInvestment,
		TotalWeight:     totalWeight,
		Pool:            pool,
		Profit:          pool - totalInvestment,
	}, nil
}

// weightEpsilon absorbs float error in TotalWeight for fair books such as 1.5/3.0.
const weightEpsilon = 1e-12

// IsArbitrage reports whether the split locks in a positive profit.
func (q Quote) IsArbitrage() bool {
	return q.TotalWeight < 1-weightEpsilon
}

// ProfitPct returns profit as a percentage of the total investment.
func (q Quote) ProfitPct() float64 {
	if q.TotalInvestment == 0 {
		return 0
	}
	return q.Profit / q.TotalInvestment * 100
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidInput, field, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidInput, field, v)
	}
	return nil
}

// checkResult rejects inputs whose split overflows or underflows float64.
func checkResult(totalWeight, pool, investmentA, investmentB float64) error {
	for _, v := range []float64{totalWeight, pool, investmentA, investmentB} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: odds and total_investment produce a split out of range", ErrInvalidInput)
		}
	}
	if pool <= 0 {
		return fmt.Errorf("%w: odds and total_investment produce a split out of range", ErrInvalidInput)
	}
	return nil
}
