package split

import "testing"

func TestRounded(t *testing.T) {
	tests := []struct {
		name    string
		oddsA   float64
		oddsB   float64
		total   float64
		investA string
		investB string
		ret     string
		profit  string
	}{
		{"even money", 2.0, 2.0, 100, "50", "50", "100", "0"},
		{"fair book", 1.5, 3.0, 100, "66.67", "33.33", "100", "0"},
		{"arbitrage", 2.5, 1.8, 200, "83.72", "116.28", "209.3", "9.3"},
		{"overround", 1.9, 1.9, 100, "50", "50", "95", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Split(tt.oddsA, tt.oddsB, tt.total)
			if err != nil {
				t.Fatal(err)
			}
			m := q.Rounded()
			if got := m.InvestmentA.String(); got != tt.investA {
				t.Errorf("InvestmentA = %s, want %s", got, tt.investA)
			}
			if got := m.InvestmentB.String(); got != tt.investB {
				t.Errorf("InvestmentB = %s, want %s", got, tt.investB)
			}
			if got := m.Return.String(); got != tt.ret {
				t.Errorf("Return = %s, want %s", got, tt.ret)
			}
			if got := m.Profit.String(); got != tt.profit {
				t.Errorf("Profit = %s, want %s", got, tt.profit)
			}
		})
	}
}

func TestRoundedStakesSumToTotal(t *testing.T) {
	for _, a := range oddsGrid {
		for _, b := range oddsGrid {
			for _, total := range []float64{0.01, 1, 99.99, 100, 333.33, 1234.56} {
				q, err := Split(a, b, total)
				if err != nil {
					t.Fatal(err)
				}
				m := q.Rounded()
				if sum := m.InvestmentA.Add(m.InvestmentB); !sum.Equal(m.TotalInvestment) {
					t.Errorf("Split(%v, %v, %v): rounded stakes %s + %s != %s",
						a, b, total, m.InvestmentA, m.InvestmentB, m.TotalInvestment)
				}
			}
		}
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.005, "1.01"},
		{2.675, "2.68"},
		{-4.545, "-4.55"},
		{1e-14, "0.00"},
		{-1e-14, "0.00"},
		{83.72093023255815, "83.72"},
	}

	for _, tt := range tests {
		if got := RoundMoney(tt.in).StringFixed(MoneyPlaces); got != tt.want {
			t.Errorf("RoundMoney(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
