package backtest

import (
	"time"
)

// Result is one back-test sample: the scores as of a historical date and
// the forward returns that graded them. A nil return means no price data
// existed that far forward; the other horizons stay usable.
type Result struct {
	Date             time.Time
	Price            float64
	TradeScore       int
	InvestmentScore  int
	TradeRating      string
	InvestmentRating string
	Return2W         *float64
	Return1M         *float64
	Return3M         *float64
}

// AccuracyStats aggregates one rating tier: how often its forward returns
// were positive and what they averaged, per horizon.
type AccuracyStats struct {
	Rating string
	Count  int

	PositiveRate2W float64
	AvgReturn2W    float64
	PositiveRate1M float64
	AvgReturn1M    float64
	PositiveRate3M float64
	AvgReturn3M    float64
}

// Config drives the historical scan.
type Config struct {
	StartDate    time.Time
	EndDate      time.Time
	IntervalDays int // days between samples
	LookbackDays int // close window handed to the scorer
	MinHistory   int // skip samples with less history than this
}

// NewConfig creates default config: weekly samples over a one-year
// indicator window.
func NewConfig() Config {
	return Config{
		IntervalDays: 7,
		LookbackDays: 365,
		MinHistory:   50,
	}
}

// Forward-return horizons in calendar days.
const (
	Horizon2W = 14
	Horizon1M = 30
	Horizon3M = 90
)
