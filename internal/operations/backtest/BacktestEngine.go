package backtest

import (
	"IcebergScore/internal/services/scoring"
	"fmt"
	"time"
)

// PriceSource is the slice of the price store the harness needs. The
// strict-before contract of ClosingPricesBefore is what keeps samples free
// of look-ahead; the engine itself never sees data on or after a sample
// date when scoring it.
type PriceSource interface {
	ClosingPricesBefore(ticker string, asOf time.Time, limit int) ([]float64, error)
	PriceOnOrBefore(ticker string, date time.Time) (float64, bool, error)
}

type Engine struct {
	prices PriceSource
	scorer *scoring.Scorer
	config Config
}

func NewEngine(prices PriceSource, config Config) *Engine {
	return &Engine{
		prices: prices,
		scorer: scoring.NewScorer(),
		config: config,
	}
}

// Run replays the scorer across the configured date range at fixed
// intervals and grades each sample with forward returns. Dates without
// enough history or without a price are skipped, not failed.
func (e *Engine) Run(ticker string) ([]Result, error) {
	var results []Result

	for date := e.config.StartDate; !date.After(e.config.EndDate); date = date.AddDate(0, 0, e.config.IntervalDays) {
		tradeScore, investScore, ok, err := e.ScoreAtDate(ticker, date)
		if err != nil {
			return nil, fmt.Errorf("scoring %s at %s: %w", ticker, date.Format("2006-01-02"), err)
		}
		if !ok {
			continue
		}

		price, found, err := e.prices.PriceOnOrBefore(ticker, date)
		if err != nil {
			return nil, fmt.Errorf("price lookup for %s: %w", ticker, err)
		}
		if !found || price == 0 {
			continue
		}

		results = append(results, Result{
			Date:             date,
			Price:            price,
			TradeScore:       tradeScore,
			InvestmentScore:  investScore,
			TradeRating:      scoring.RatingLabel(tradeScore, true),
			InvestmentRating: scoring.RatingLabel(investScore, false),
			Return2W:         e.forwardReturn(ticker, date, price, Horizon2W),
			Return1M:         e.forwardReturn(ticker, date, price, Horizon1M),
			Return3M:         e.forwardReturn(ticker, date, price, Horizon3M),
		})
	}

	return results, nil
}

// ScoreAtDate computes both display scores using only prices strictly
// before asOf. ok is false when there is too little history to score.
func (e *Engine) ScoreAtDate(ticker string, asOf time.Time) (tradeScore, investScore int, ok bool, err error) {
	closes, err := e.prices.ClosingPricesBefore(ticker, asOf, e.config.LookbackDays+50)
	if err != nil {
		return 0, 0, false, err
	}
	if len(closes) < e.config.MinHistory {
		return 0, 0, false, nil
	}
	if len(closes) > e.config.LookbackDays {
		closes = closes[len(closes)-e.config.LookbackDays:]
	}

	trade, investment := e.scorer.Score(closes)
	return trade.DisplayScore(), investment.DisplayScore(), true, nil
}

// forwardReturn is the simple % return from a sample to the close on or
// nearest before daysForward later. Nil when nothing is there to measure.
func (e *Engine) forwardReturn(ticker string, from time.Time, fromPrice float64, daysForward int) *float64 {
	if fromPrice == 0 {
		return nil
	}

	target := from.AddDate(0, 0, daysForward)
	toPrice, found, err := e.prices.PriceOnOrBefore(ticker, target)
	if err != nil || !found {
		return nil
	}

	ret := (toPrice - fromPrice) / fromPrice
	return &ret
}

// EvaluateAccuracy groups results by rating label for one score type
// ("trade" or "investment") and computes per-tier positive rates and mean
// returns at each horizon. This is the correctness oracle for the whole
// scoring system.
func EvaluateAccuracy(results []Result, scoreType string) map[string]AccuracyStats {
	byRating := make(map[string][]Result)
	for _, r := range results {
		rating := r.TradeRating
		if scoreType == "investment" {
			rating = r.InvestmentRating
		}
		byRating[rating] = append(byRating[rating], r)
	}

	stats := make(map[string]AccuracyStats)
	for rating, group := range byRating {
		s := AccuracyStats{Rating: rating, Count: len(group)}

		s.PositiveRate2W, s.AvgReturn2W = summarize(group, func(r Result) *float64 { return r.Return2W })
		s.PositiveRate1M, s.AvgReturn1M = summarize(group, func(r Result) *float64 { return r.Return1M })
		s.PositiveRate3M, s.AvgReturn3M = summarize(group, func(r Result) *float64 { return r.Return3M })

		stats[rating] = s
	}

	return stats
}

func summarize(group []Result, pick func(Result) *float64) (positiveRate, avgReturn float64) {
	count := 0
	positive := 0
	sum := 0.0
	for _, r := range group {
		ret := pick(r)
		if ret == nil {
			continue
		}
		count++
		sum += *ret
		if *ret > 0 {
			positive++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(positive) / float64(count), sum / float64(count)
}
