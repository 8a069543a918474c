package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"stake-splitter/internal/odds"
	"stake-splitter/internal/split"
)

// DefaultCurrency is the symbol the calculator was built around.
const DefaultCurrency = "₹"

// LowMarginPct is the profit percentage under which transaction costs
// are likely to eat an arbitrage.
const LowMarginPct = 1.0

// View is the JSON representation of a quote.
type View struct {
	OddsA           float64         `json:"odds_a"`
	OddsB           float64         `json:"odds_b"`
	TotalInvestment Amount   `json:"total_investment"`
	InvestmentA     Amount   `json:"investment_a"`
	InvestmentB     Amount   `json:"investment_b"`
	ReturnA         Amount   `json:"return_a"`
	ReturnB         Amount   `json:"return_b"`
	Profit          Amount   `json:"profit"`
	ProfitPct       Amount   `json:"profit_pct"`
	ImpliedSum      float64  `json:"implied_sum"`
	Arbitrage       bool     `json:"arbitrage"`
	FairProbA       float64  `json:"fair_prob_a"`
	FairProbB       float64  `json:"fair_prob_b"`
	Currency        string   `json:"currency"`
	Warnings        []string `json:"warnings"`
}

// Amount is a rounded money value. It encodes to JSON as a string with
// exactly two decimal places, e.g. "9.30".
type Amount struct {
	decimal.Decimal
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.StringFixed(split.MoneyPlaces))), nil
}

// NewView builds the display view of q. Money fields are rounded to two places.
func NewView(q split.Quote, currency string) View {
	m := q.Rounded()
	fairA, fairB := odds.RemoveVigFromDecimal(q.OddsA, q.OddsB)

	return View{
		OddsA:           q.OddsA,
		OddsB:           q.OddsB,
		TotalInvestment: Amount{m.TotalInvestment},
		InvestmentA:     Amount{m.InvestmentA},
		InvestmentB:     Amount{m.InvestmentB},
		ReturnA:         Amount{m.Return},
		ReturnB:         Amount{m.Return},
		Profit:          Amount{m.Profit},
		ProfitPct:       Amount{split.RoundMoney(q.ProfitPct())},
		ImpliedSum:      q.TotalWeight,
		Arbitrage:       q.IsArbitrage(),
		FairProbA:       fairA,
		FairProbB:       fairB,
		Currency:        currency,
		Warnings:        Warnings(q),
	}
}

// Warnings returns caveats for acting on q.
func Warnings(q split.Quote) []string {
	warnings := []string{}

	profit := q.Rounded().Profit
	switch {
	case profit.IsNegative():
		warnings = append(warnings, "No arbitrage: this split locks in a loss")
	case profit.IsZero():
		// a rounded profit of zero is a fair book, not a thin arbitrage
		warnings = append(warnings, "No arbitrage: this split only breaks even")
	case q.ProfitPct() < LowMarginPct:
		warnings = append(warnings, "Low profit margin - consider transaction costs")
	}

	return warnings
}

// Money formats an amount with its currency symbol, e.g. "₹ 83.72".
func Money(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(split.MoneyPlaces)
}

// ProfitLabel returns "Profit: ₹ 9.30", or "Loss: ₹ 4.55" when the split loses money.
func ProfitLabel(q split.Quote, currency string) string {
	profit := q.Rounded().Profit
	if profit.IsNegative() {
		return "Loss: " + Money(currency, profit.Abs())
	}
	return "Profit: " + Money(currency, profit)
}

// TotalLabel returns "Total Investment: ₹ 200.00".
func TotalLabel(q split.Quote, currency string) string {
	return "Total Investment: " + Money(currency, q.Rounded().TotalInvestment)
}

// OutcomeHeader labels an outcome column with its odds, e.g. "Team A (2.5)".
func OutcomeHeader(name string, decimalOdds float64) string {
	return fmt.Sprintf("%s (%s)", name, strconv.FormatFloat(decimalOdds, 'f', -1, 64))
}

// WriteTable writes the stake table followed by the total and profit lines:
//
//	               Team A (2.5)   Team B (1.8)
//	Invest value   ₹ 83.72        ₹ 116.28
//	Return         ₹ 209.30       ₹ 209.30
//
//	Total Investment: ₹ 200.00
//	Profit: ₹ 9.30
func WriteTable(w io.Writer, q split.Quote, currency string) error {
	m := q.Rounded()

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t%s\n", OutcomeHeader("Team A", q.OddsA), OutcomeHeader("Team B", q.OddsB))
	fmt.Fprintf(tw, "Invest value\t%s\t%s\n", Money(currency, m.InvestmentA), Money(currency, m.InvestmentB))
	fmt.Fprintf(tw, "Return\t%s\t%s\n", Money(currency, m.Return), Money(currency, m.Return))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing stake table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s\n%s\n", TotalLabel(q, currency), ProfitLabel(q, currency))
	return err
}
