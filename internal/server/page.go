package server

import (
	"embed"
	"errors"
	"net/http"

	"stake-splitter/internal/report"
	"stake-splitter/internal/split"
)

//go:embed templates/index.html
var templates embed.FS

type pageData struct {
	OddsA           string
	OddsB           string
	TotalInvestment string
	Error           string
	Result          *pageResult
}

type pageResult struct {
	HeaderA     string
	HeaderB     string
	InvestA     string
	InvestB     string
	Total       string
	Profit      string
	ProfitClass string
	Warnings    []string
}

// Page renders the calculator. The form submits back to itself, so each
// change of inputs recomputes the split; empty inputs render no result.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := pageData{
		OddsA:           query.Get("odds_a"),
		OddsB:           query.Get("odds_b"),
		TotalInvestment: query.Get("total_investment"),
	}

	if result, err := s.compute(r); err != nil {
		if !errors.Is(err, errMissingInput) {
			data.Error = err.Error()
		}
	} else {
		data.Result = result
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.requestLog(r).WithError(err).Error("rendering page")
	}
}

func (s *Server) compute(r *http.Request) (*pageResult, error) {
	in, err := parseInputs(r.URL.Query())
	if err != nil {
		return nil, err
	}
	q, err := split.Split(in.oddsA, in.oddsB, in.total)
	if err != nil {
		return nil, err
	}
	s.logQuote(r, q)

	currency := s.cfg.CurrencySymbol
	m := q.Rounded()

	profitClass := "profit"
	if m.Profit.IsNegative() {
		profitClass = "loss"
	}

	return &pageResult{
		HeaderA:     report.OutcomeHeader("Team A", q.OddsA),
		HeaderB:     report.OutcomeHeader("Team B", q.OddsB),
		InvestA:     report.Money(currency, m.InvestmentA),
		InvestB:     report.Money(currency, m.InvestmentB),
		Total:       report.TotalLabel(q, currency),
		Profit:      report.ProfitLabel(q, currency),
		ProfitClass: profitClass,
		Warnings:    report.Warnings(q),
	}, nil
}
