package backtest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePriceSource serves a fixed daily series from memory, honoring the
// same strict-before / on-or-before contracts as the real store.
type fakePriceSource struct {
	dates  []time.Time
	closes []float64
}

func newFakePriceSource(start time.Time, closes []float64) *fakePriceSource {
	f := &fakePriceSource{closes: closes}
	for i := range closes {
		f.dates = append(f.dates, start.AddDate(0, 0, i))
	}
	return f
}

func (f *fakePriceSource) ClosingPricesBefore(ticker string, asOf time.Time, limit int) ([]float64, error) {
	var out []float64
	for i, d := range f.dates {
		if d.Before(asOf) {
			out = append(out, f.closes[i])
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakePriceSource) PriceOnOrBefore(ticker string, date time.Time) (float64, bool, error) {
	for i := len(f.dates) - 1; i >= 0; i-- {
		if !f.dates[i].After(date) {
			return f.closes[i], true, nil
		}
	}
	return 0, false, nil
}

func fp(v float64) *float64 { return &v }

// wavyCloses is a deterministic series with enough texture to exercise
// every indicator: a gentle drift plus a sine swing.
func wavyCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.1 + 10*math.Sin(float64(i)/5)
	}
	return closes
}

func TestForwardReturn(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// 100 for two weeks, then a clean +10% step.
	closes := make([]float64, 40)
	for i := range closes {
		if i < 14 {
			closes[i] = 100
		} else {
			closes[i] = 110
		}
	}
	engine := NewEngine(newFakePriceSource(start, closes), NewConfig())

	ret := engine.forwardReturn("TEST", start, 100, Horizon2W)
	require.NotNil(t, ret)
	assert.InDelta(t, 0.10, *ret, 1e-9)

	// Before the data starts there is nothing to grade.
	assert.Nil(t, engine.forwardReturn("TEST", start.AddDate(0, 0, -60), 100, Horizon2W))

	// A zero entry price cannot produce a return.
	assert.Nil(t, engine.forwardReturn("TEST", start, 0, Horizon2W))
}

func TestScoreAtDateNoLookAhead(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closes := wavyCloses(400)
	asOf := start.AddDate(0, 0, 300)

	engine := NewEngine(newFakePriceSource(start, closes), NewConfig())
	trade1, invest1, ok, err := engine.ScoreAtDate("TEST", asOf)
	require.NoError(t, err)
	require.True(t, ok)

	// Rewrite everything on and after the sample date: the scores must not move.
	mutated := append([]float64(nil), closes...)
	for i := 300; i < len(mutated); i++ {
		mutated[i] = 9999
	}
	engine2 := NewEngine(newFakePriceSource(start, mutated), NewConfig())
	trade2, invest2, ok, err := engine2.ScoreAtDate("TEST", asOf)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, trade1, trade2)
	assert.Equal(t, invest1, invest2)
}

func TestScoreAtDateInsufficientHistory(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := NewEngine(newFakePriceSource(start, wavyCloses(30)), NewConfig())

	_, _, ok, err := engine.ScoreAtDate("TEST", start.AddDate(0, 0, 31))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closes := wavyCloses(250)

	config := NewConfig()
	config.StartDate = start.AddDate(0, 0, 100)
	config.EndDate = start.AddDate(0, 0, 140)

	engine := NewEngine(newFakePriceSource(start, closes), config)
	results, err := engine.Run("TEST")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Weekly samples over a 40-day range.
	assert.Len(t, results, 6)

	for _, r := range results {
		assert.GreaterOrEqual(t, r.TradeScore, 0)
		assert.LessOrEqual(t, r.TradeScore, 100)
		assert.GreaterOrEqual(t, r.InvestmentScore, 0)
		assert.LessOrEqual(t, r.InvestmentScore, 100)
		assert.NotEmpty(t, r.TradeRating)
		assert.NotEmpty(t, r.InvestmentRating)
		assert.Greater(t, r.Price, 0.0)

		// Every horizon lands inside the data range here.
		require.NotNil(t, r.Return2W)
		require.NotNil(t, r.Return1M)
		require.NotNil(t, r.Return3M)
	}
}

func TestEvaluateAccuracy(t *testing.T) {
	results := []Result{
		{TradeRating: "BUY", InvestmentRating: "HOLD", Return2W: fp(0.05), Return1M: fp(0.10)},
		{TradeRating: "BUY", InvestmentRating: "HOLD", Return2W: fp(-0.01), Return3M: fp(0.20)},
		{TradeRating: "SELL", InvestmentRating: "SELL", Return2W: fp(-0.05)},
	}

	stats := EvaluateAccuracy(results, "trade")
	require.Len(t, stats, 2)

	buy := stats["BUY"]
	assert.Equal(t, 2, buy.Count)
	assert.InDelta(t, 0.5, buy.PositiveRate2W, 1e-9)
	assert.InDelta(t, 0.02, buy.AvgReturn2W, 1e-9)
	assert.InDelta(t, 1.0, buy.PositiveRate1M, 1e-9)
	assert.InDelta(t, 0.10, buy.AvgReturn1M, 1e-9)
	assert.InDelta(t, 1.0, buy.PositiveRate3M, 1e-9)

	sell := stats["SELL"]
	assert.Equal(t, 1, sell.Count)
	assert.InDelta(t, 0.0, sell.PositiveRate2W, 1e-9)
	assert.InDelta(t, -0.05, sell.AvgReturn2W, 1e-9)
	// No graded samples at the longer horizons.
	assert.Zero(t, sell.PositiveRate3M)
	assert.Zero(t, sell.AvgReturn3M)

	// Grouping by the other score type uses the other label column.
	investStats := EvaluateAccuracy(results, "investment")
	assert.Equal(t, 2, investStats["HOLD"].Count)
	assert.Equal(t, 1, investStats["SELL"].Count)
}
