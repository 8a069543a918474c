package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stake-splitter/internal/config"
	"stake-splitter/internal/odds"
	"stake-splitter/internal/report"
	"stake-splitter/internal/server"
	"stake-splitter/internal/split"
)

const usage = `Usage:
  splitter quote [-currency SYMBOL] [-json] <odds_a> <odds_b> <total_investment>
  splitter serve

Odds may be decimal (2.5), American (+150, -200) or fractional (5/2).
Put -- before the arguments when odds_a is negative American odds.
With no command, splitter serves the HTTP API.
`

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "quote":
		return runQuote(args, stdout, stderr)
	case "serve":
		return runServe(stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return exitInvalid
	}
}

func runQuote(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	currency := fs.String("currency", cfg.CurrencySymbol, "currency symbol for amounts")
	asJSON := fs.Bool("json", false, "print the quote as JSON")
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}

	if fs.NArg() != 3 {
		fmt.Fprintf(stderr, "quote needs odds_a, odds_b and total_investment\n\n%s", usage)
		return exitInvalid
	}

	q, err := quote(fs.Arg(0), fs.Arg(1), fs.Arg(2))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, split.ErrInvalidInput) || errors.Is(err, odds.ErrInvalidOdds) {
			return exitInvalid
		}
		return exitError
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.NewView(q, *currency)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if err := report.WriteTable(stdout, q, *currency); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	for _, w := range report.Warnings(q) {
		fmt.Fprintf(stdout, "! %s\n", w)
	}
	return exitOK
}

func quote(rawA, rawB, rawTotal string) (split.Quote, error) {
	oddsA, err := odds.Parse(rawA)
	if err != nil {
		return split.Quote{}, fmt.Errorf("odds_a: %w", err)
	}
	oddsB, err := odds.Parse(rawB)
	if err != nil {
		return split.Quote{}, fmt.Errorf("odds_b: %w", err)
	}
	total, err := split.ParseAmount(rawTotal)
	if err != nil {
		return split.Quote{}, err
	}
	return split.Split(oddsA, oddsB, total)
}

func runServe(stderr io.Writer) int {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitInvalid
	}

	logger := config.NewLogger(cfg)
	logger.Infof("Stake splitter starting |%s", config.Summary(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).ListenAndServe(ctx); err != nil {
		logger.WithError(err).Error("Server stopped with error")
		return exitError
	}
	return exitOK
}
