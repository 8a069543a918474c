package split

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places amounts are displayed with.
const MoneyPlaces = 2

// Money is a Quote rounded for display.
type Money struct {
	TotalInvestment decimal.Decimal
	InvestmentA     decimal.Decimal
	InvestmentB     decimal.Decimal
	Return          decimal.Decimal
	Profit          decimal.Decimal
}

// Rounded returns the quote's amounts rounded to MoneyPlaces.
// InvestmentB is taken as the remainder so the two stakes add up to the
// rounded total exactly (e.g. 50.005/49.995 shows as 50.01/49.99, not 50.01/50.00).
func (q Quote) Rounded() Money {
	total := RoundMoney(q.TotalInvestment)
	investA := RoundMoney(q.InvestmentA)

	return Money{
		TotalInvestment: total,
		InvestmentA:     investA,
		InvestmentB:     total.Sub(investA),
		Return:          RoundMoney(q.Pool),
		Profit:          RoundMoney(q.Profit),
	}
}

// RoundMoney rounds v half away from zero to MoneyPlaces.
func RoundMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(MoneyPlaces)
}
