package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"stake-splitter/internal/odds"
	"stake-splitter/internal/report"
	"stake-splitter/internal/split"
)

// SplitRequest is the body of POST /api/v1/split.
// Odds accept a number or an odds string ("+150", "5/2").
type SplitRequest struct {
	OddsA           odds.Value `json:"odds_a"`
	OddsB           odds.Value `json:"odds_b"`
	TotalInvestment float64    `json:"total_investment"`
}

// HealthCheck returns service health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "stake-splitter",
	})
}

// SplitJSON computes a split from a JSON body.
func (s *Server) SplitJSON(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	s.respondQuote(w, r, float64(req.OddsA), float64(req.OddsB), req.TotalInvestment)
}

// SplitQuery computes a split from odds_a, odds_b and total_investment query parameters.
func (s *Server) SplitQuery(w http.ResponseWriter, r *http.Request) {
	in, err := parseInputs(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	s.respondQuote(w, r, in.oddsA, in.oddsB, in.total)
}

func (s *Server) respondQuote(w http.ResponseWriter, r *http.Request, oddsA, oddsB, total float64) {
	q, err := split.Split(oddsA, oddsB, total)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	s.logQuote(r, q)
	respondJSON(w, http.StatusOK, report.NewView(q, s.cfg.CurrencySymbol))
}

// logQuote records arbitrage quotes at info and everything else at debug.
func (s *Server) logQuote(r *http.Request, q split.Quote) {
	entry := s.requestLog(r).WithFields(logrus.Fields{
		"odds_a":       q.OddsA,
		"odds_b":       q.OddsB,
		"total":        q.TotalInvestment,
		"investment_a": q.InvestmentA,
		"investment_b": q.InvestmentB,
		"profit":       q.Profit,
	})
	if q.IsArbitrage() {
		entry.Infof("ARB quote: profit=%.2f (%.2f%%)", q.Profit, q.ProfitPct())
		return
	}
	entry.Debug("quote")
}

// inputs are the three parsed calculator fields.
type inputs struct {
	oddsA float64
	oddsB float64
	total float64
}

// errMissingInput marks a form or query where a field was left empty.
var errMissingInput = errors.New("missing input")

func parseInputs(values url.Values) (inputs, error) {
	rawA := strings.TrimSpace(values.Get("odds_a"))
	rawB := strings.TrimSpace(values.Get("odds_b"))
	rawTotal := strings.TrimSpace(values.Get("total_investment"))

	for _, field := range []struct{ name, value string }{
		{"odds_a", rawA}, {"odds_b", rawB}, {"total_investment", rawTotal},
	} {
		if field.value == "" {
			return inputs{}, fmt.Errorf("%w: %s is required", errMissingInput, field.name)
		}
	}

	oddsA, err := odds.Parse(rawA)
	if err != nil {
		return inputs{}, fmt.Errorf("odds_a: %w", err)
	}
	oddsB, err := odds.Parse(rawB)
	if err != nil {
		return inputs{}, fmt.Errorf("odds_b: %w", err)
	}
	total, err := split.ParseAmount(rawTotal)
	if err != nil {
		return inputs{}, err
	}

	return inputs{oddsA: oddsA, oddsB: oddsB, total: total}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingInput),
		errors.Is(err, split.ErrInvalidInput),
		errors.Is(err, odds.ErrInvalidOdds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
